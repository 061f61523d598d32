// Package deploy models the two simulated deployment flows as linear,
// monotonically advancing state machines driven by a tick source. Phases are
// totally ordered; no phase is ever skipped or revisited.
package deploy

// Kind discriminates the two pipelines.
type Kind string

const (
	KindWeb      Kind = "web"
	KindAppStore Kind = "app-store"
)

// StepState is the presentation classification of a phase relative to the
// current one: everything at or before the current phase is done, the
// current phase is active, everything later is pending.
type StepState string

const (
	StepDone    StepState = "done"
	StepActive  StepState = "active"
	StepPending StepState = "pending"
)

// WebPhase enumerates the web publish pipeline states in strict forward
// order. Failed is reserved for a transport/provider failure path that the
// simulated pipeline never enters.
type WebPhase int

const (
	WebPhaseIdle WebPhase = iota
	WebPhaseConnectingSourceControl
	WebPhasePublishing
	WebPhaseSuccess
	WebPhaseFailed
)

var webPhaseNames = map[WebPhase]string{
	WebPhaseIdle:                    "idle",
	WebPhaseConnectingSourceControl: "connecting-source-control",
	WebPhasePublishing:              "publishing",
	WebPhaseSuccess:                 "success",
	WebPhaseFailed:                  "failed",
}

func (p WebPhase) String() string { return webPhaseNames[p] }

// Next returns the successor phase. ok is false on terminal phases.
func (p WebPhase) Next() (next WebPhase, ok bool) {
	switch p {
	case WebPhaseIdle, WebPhaseConnectingSourceControl, WebPhasePublishing:
		return p + 1, true
	default:
		return p, false
	}
}

func (p WebPhase) Terminal() bool {
	return p == WebPhaseSuccess || p == WebPhaseFailed
}

// AppStorePhase enumerates the app-store submission pipeline states.
// CredentialsPending is the single phase exited by a user event rather than
// a tick. Failed is reserved and never entered by the simulation.
type AppStorePhase int

const (
	AppStorePhaseCredentialsPending AppStorePhase = iota
	AppStorePhaseQueued
	AppStorePhaseBuilding
	AppStorePhaseDownloadingArtifact
	AppStorePhaseUploading
	AppStorePhaseSuccess
	AppStorePhaseFailed
)

var appStorePhaseNames = map[AppStorePhase]string{
	AppStorePhaseCredentialsPending:  "credentials-pending",
	AppStorePhaseQueued:              "queued",
	AppStorePhaseBuilding:            "building",
	AppStorePhaseDownloadingArtifact: "downloading-artifact",
	AppStorePhaseUploading:           "uploading",
	AppStorePhaseSuccess:             "success",
	AppStorePhaseFailed:              "failed",
}

func (p AppStorePhase) String() string { return appStorePhaseNames[p] }

// Next returns the successor phase for tick-driven advancement. It is not
// defined for CredentialsPending, which only Submit can exit.
func (p AppStorePhase) Next() (next AppStorePhase, ok bool) {
	switch p {
	case AppStorePhaseQueued, AppStorePhaseBuilding, AppStorePhaseDownloadingArtifact, AppStorePhaseUploading:
		return p + 1, true
	default:
		return p, false
	}
}

func (p AppStorePhase) Terminal() bool {
	return p == AppStorePhaseSuccess || p == AppStorePhaseFailed
}

// AppStoreSteps is the ordered list of tick-driven phases shown as progress
// steps.
var AppStoreSteps = []AppStorePhase{
	AppStorePhaseQueued,
	AppStorePhaseBuilding,
	AppStorePhaseDownloadingArtifact,
	AppStorePhaseUploading,
	AppStorePhaseSuccess,
}

// StepStateOf classifies step relative to current for presentation.
func StepStateOf(current, step AppStorePhase) StepState {
	switch {
	case current == step:
		return StepActive
	case current > step:
		return StepDone
	default:
		return StepPending
	}
}
