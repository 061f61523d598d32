package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/pkg/deploy"
)

type manualClock struct {
	ticks chan time.Time
}

func newManualClock() *manualClock {
	return &manualClock{ticks: make(chan time.Time, 16)}
}

func (c *manualClock) NewTicker(time.Duration) deploy.Ticker { return &manualTicker{ch: c.ticks} }

func (c *manualClock) Tick() { c.ticks <- time.Now() }

type manualTicker struct {
	ch chan time.Time
}

func (t *manualTicker) Chan() <-chan time.Time { return t.ch }
func (t *manualTicker) Stop()                  {}

func webPhaseIs(t *testing.T, svc IDeploymentService, sessionId uuid.UUID, phase string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		res, err := svc.WebStatus(context.Background(), sessionId)
		return err == nil && res.Phase == phase
	}, time.Second, 5*time.Millisecond, "web pipeline never reached %q", phase)
}

func appStorePhaseIs(t *testing.T, svc IDeploymentService, sessionId uuid.UUID, phase string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		res, err := svc.AppStoreStatus(context.Background(), sessionId)
		return err == nil && res.Phase == phase
	}, time.Second, 5*time.Millisecond, "app store pipeline never reached %q", phase)
}

func TestWebDeploymentLifecycle(t *testing.T) {
	clock := newManualClock()
	svc := NewDeploymentService(clock, nil, nil, nopLogger{})
	sessionId := uuid.New()

	_, err := svc.WebStatus(context.Background(), sessionId)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	res, err := svc.OpenWeb(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Equal(t, "idle", res.Phase)
	assert.Empty(t, res.PublishedURL)

	clock.Tick()
	webPhaseIs(t, svc, sessionId, "connecting-source-control")

	clock.Tick()
	webPhaseIs(t, svc, sessionId, "publishing")

	clock.Tick()
	webPhaseIs(t, svc, sessionId, "success")

	res, err = svc.WebStatus(context.Background(), sessionId)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.PublishedURL, "https://vibe-code-"))
	assert.True(t, strings.HasSuffix(res.PublishedURL, ".vercel.app"))

	require.NoError(t, svc.DismissWeb(context.Background(), sessionId))
	_, err = svc.WebStatus(context.Background(), sessionId)
	assert.Error(t, err)
}

func TestReopeningWebRestartsPipeline(t *testing.T) {
	clock := newManualClock()
	svc := NewDeploymentService(clock, nil, nil, nopLogger{})
	sessionId := uuid.New()

	_, err := svc.OpenWeb(context.Background(), sessionId)
	require.NoError(t, err)
	clock.Tick()
	webPhaseIs(t, svc, sessionId, "connecting-source-control")

	// Re-opening dismisses the old run and starts over at idle.
	res, err := svc.OpenWeb(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Equal(t, "idle", res.Phase)
}

func TestAppStoreDeploymentLifecycle(t *testing.T) {
	clock := newManualClock()
	svc := NewDeploymentService(clock, nil, nil, nopLogger{})
	sessionId := uuid.New()

	res, err := svc.OpenAppStore(context.Background(), sessionId)
	require.NoError(t, err)
	assert.Equal(t, "credentials-pending", res.Phase)
	assert.Empty(t, res.Steps)

	creds := &dto.SubmitCredentialsRequest{
		AccessToken: "tok",
		KeyId:       "key",
		IssuerId:    "iss",
		PrivateKey:  "pem",
	}
	res, err = svc.SubmitCredentials(context.Background(), sessionId, creds)
	require.NoError(t, err)
	assert.Equal(t, "queued", res.Phase)
	assert.NotEmpty(t, res.Steps)

	// Submitting twice is a conflict.
	_, err = svc.SubmitCredentials(context.Background(), sessionId, creds)
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 409, appErr.Status)

	for _, phase := range []string{"building", "downloading-artifact", "uploading", "success"} {
		clock.Tick()
		appStorePhaseIs(t, svc, sessionId, phase)
	}

	res, err = svc.AppStoreStatus(context.Background(), sessionId)
	require.NoError(t, err)
	for _, step := range res.Steps {
		if step.Name == "success" {
			assert.Equal(t, "active", step.State)
		} else {
			assert.Equal(t, "done", step.State)
		}
	}

	require.NoError(t, svc.DismissAppStore(context.Background(), sessionId))
	_, err = svc.AppStoreStatus(context.Background(), sessionId)
	assert.Error(t, err)
}

func TestSubmitCredentialsWithoutOpenIsNotFound(t *testing.T) {
	svc := NewDeploymentService(newManualClock(), nil, nil, nopLogger{})

	_, err := svc.SubmitCredentials(context.Background(), uuid.New(), &dto.SubmitCredentialsRequest{
		AccessToken: "t", KeyId: "k", IssuerId: "i", PrivateKey: "p",
	})
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
}
