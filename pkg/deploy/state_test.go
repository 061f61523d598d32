package deploy

import (
	"testing"
)

func TestWebPhaseNext(t *testing.T) {
	tests := []struct {
		name     string
		phase    WebPhase
		wantNext WebPhase
		wantOk   bool
	}{
		{name: "idle advances", phase: WebPhaseIdle, wantNext: WebPhaseConnectingSourceControl, wantOk: true},
		{name: "connecting advances", phase: WebPhaseConnectingSourceControl, wantNext: WebPhasePublishing, wantOk: true},
		{name: "publishing advances", phase: WebPhasePublishing, wantNext: WebPhaseSuccess, wantOk: true},
		{name: "success is terminal", phase: WebPhaseSuccess, wantNext: WebPhaseSuccess, wantOk: false},
		{name: "failed is terminal", phase: WebPhaseFailed, wantNext: WebPhaseFailed, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.phase.Next()
			if next != tt.wantNext || ok != tt.wantOk {
				t.Errorf("Next() = (%v, %v), want (%v, %v)", next, ok, tt.wantNext, tt.wantOk)
			}
		})
	}
}

func TestAppStorePhaseNext(t *testing.T) {
	tests := []struct {
		name     string
		phase    AppStorePhase
		wantNext AppStorePhase
		wantOk   bool
	}{
		// CredentialsPending never advances on ticks, only Submit exits it.
		{name: "credentials-pending holds", phase: AppStorePhaseCredentialsPending, wantNext: AppStorePhaseCredentialsPending, wantOk: false},
		{name: "queued advances", phase: AppStorePhaseQueued, wantNext: AppStorePhaseBuilding, wantOk: true},
		{name: "building advances", phase: AppStorePhaseBuilding, wantNext: AppStorePhaseDownloadingArtifact, wantOk: true},
		{name: "downloading advances", phase: AppStorePhaseDownloadingArtifact, wantNext: AppStorePhaseUploading, wantOk: true},
		{name: "uploading advances", phase: AppStorePhaseUploading, wantNext: AppStorePhaseSuccess, wantOk: true},
		{name: "success is terminal", phase: AppStorePhaseSuccess, wantNext: AppStorePhaseSuccess, wantOk: false},
		{name: "failed is terminal", phase: AppStorePhaseFailed, wantNext: AppStorePhaseFailed, wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.phase.Next()
			if next != tt.wantNext || ok != tt.wantOk {
				t.Errorf("Next() = (%v, %v), want (%v, %v)", next, ok, tt.wantNext, tt.wantOk)
			}
		})
	}
}

func TestStepStateOf(t *testing.T) {
	tests := []struct {
		name    string
		current AppStorePhase
		step    AppStorePhase
		want    StepState
	}{
		{name: "earlier step is done", current: AppStorePhaseBuilding, step: AppStorePhaseQueued, want: StepDone},
		{name: "current step is active", current: AppStorePhaseBuilding, step: AppStorePhaseBuilding, want: StepActive},
		{name: "later step is pending", current: AppStorePhaseBuilding, step: AppStorePhaseUploading, want: StepPending},
		{name: "success marks all done", current: AppStorePhaseSuccess, step: AppStorePhaseUploading, want: StepDone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StepStateOf(tt.current, tt.step); got != tt.want {
				t.Errorf("StepStateOf(%v, %v) = %v, want %v", tt.current, tt.step, got, tt.want)
			}
		})
	}
}

func TestWebPhaseOrderIsStrict(t *testing.T) {
	// Walking Next() from idle must visit every phase exactly once and
	// stop at success without ever touching failed.
	seen := []WebPhase{WebPhaseIdle}
	phase := WebPhaseIdle
	for {
		next, ok := phase.Next()
		if !ok {
			break
		}
		if next != phase+1 {
			t.Fatalf("phase %v skipped to %v", phase, next)
		}
		seen = append(seen, next)
		phase = next
	}
	if phase != WebPhaseSuccess {
		t.Errorf("walk ended at %v, want %v", phase, WebPhaseSuccess)
	}
	if len(seen) != 4 {
		t.Errorf("visited %d phases, want 4", len(seen))
	}
}
