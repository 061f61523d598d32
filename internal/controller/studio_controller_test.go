package controller

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/serverutils"
)

type stubStudioService struct {
	artifact string
}

func (s *stubStudioService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	return &dto.CreateSessionResponse{}, nil
}

func (s *stubStudioService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionSnapshotResponse, error) {
	return &dto.SessionSnapshotResponse{}, nil
}

func (s *stubStudioService) SubmitPrompt(ctx context.Context, sessionId uuid.UUID, req *dto.SubmitPromptRequest) (*dto.SubmitPromptResponse, error) {
	return &dto.SubmitPromptResponse{}, nil
}

func (s *stubStudioService) AttachVisualReference(ctx context.Context, sessionId uuid.UUID, req *dto.AttachVisualContextRequest) (*dto.SessionSnapshotResponse, error) {
	return &dto.SessionSnapshotResponse{}, nil
}

func (s *stubStudioService) ClearVisualReference(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}

func (s *stubStudioService) SetActiveView(ctx context.Context, sessionId uuid.UUID, req *dto.SetActiveViewRequest) error {
	return nil
}

func (s *stubStudioService) GetArtifact(ctx context.Context, sessionId uuid.UUID) (*dto.ArtifactResponse, error) {
	return &dto.ArtifactResponse{Artifact: s.artifact}, nil
}

func (s *stubStudioService) ListArchivedSessions(ctx context.Context) ([]*dto.ArchivedSessionResponse, error) {
	return nil, nil
}

func newArtifactTestApp(artifact string) *fiber.App {
	app := fiber.New()
	NewStudioController(&stubStudioService{artifact: artifact}).RegisterRoutes(app)
	return app
}

func TestGetArtifactServesRawHTML(t *testing.T) {
	const artifact = "<!DOCTYPE html><html><body><h1>hello</h1></body></html>"
	app := newArtifactTestApp(artifact)

	token, err := serverutils.GenerateSessionToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/studio/v1/artifact", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	// The document itself, not a JSON envelope around it.
	assert.Equal(t, artifact, string(body))
}

func TestGetArtifactAcceptsQueryToken(t *testing.T) {
	const artifact = "<html><body>preview</body></html>"
	app := newArtifactTestApp(artifact)

	token, err := serverutils.GenerateSessionToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest("GET", "/studio/v1/artifact?token="+token, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, artifact, string(body))
}

func TestGetArtifactRejectsMissingToken(t *testing.T) {
	app := newArtifactTestApp("<html></html>")

	resp, err := app.Test(httptest.NewRequest("GET", "/studio/v1/artifact", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
