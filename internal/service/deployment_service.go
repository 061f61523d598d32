package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vibecode-be/internal/constant"
	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/logger"
	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/pkg/deploy"
	"vibecode-be/pkg/events"
	pktNats "vibecode-be/pkg/nats"
)

type IDeploymentService interface {
	OpenWeb(ctx context.Context, sessionId uuid.UUID) (*dto.WebDeploymentResponse, error)
	WebStatus(ctx context.Context, sessionId uuid.UUID) (*dto.WebDeploymentResponse, error)
	DismissWeb(ctx context.Context, sessionId uuid.UUID) error

	OpenAppStore(ctx context.Context, sessionId uuid.UUID) (*dto.AppStoreDeploymentResponse, error)
	AppStoreStatus(ctx context.Context, sessionId uuid.UUID) (*dto.AppStoreDeploymentResponse, error)
	SubmitCredentials(ctx context.Context, sessionId uuid.UUID, req *dto.SubmitCredentialsRequest) (*dto.AppStoreDeploymentResponse, error)
	DismissAppStore(ctx context.Context, sessionId uuid.UUID) error
}

// deploymentService owns at most one live pipeline per (session, kind).
// Re-opening a kind dismisses the previous run and starts a fresh one.
type deploymentService struct {
	mu       sync.Mutex
	web      map[uuid.UUID]*deploy.WebPipeline
	appStore map[uuid.UUID]*deploy.AppStorePipeline

	clock            deploy.Clock
	webInterval      time.Duration
	appStoreInterval time.Duration

	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher // nil when NATS is unavailable
	logger           logger.ILogger
}

func NewDeploymentService(
	clock deploy.Clock,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDeploymentService {
	if clock == nil {
		clock = deploy.SystemClock
	}
	return &deploymentService{
		web:              make(map[uuid.UUID]*deploy.WebPipeline),
		appStore:         make(map[uuid.UUID]*deploy.AppStorePipeline),
		clock:            clock,
		webInterval:      deploy.WebTickInterval,
		appStoreInterval: deploy.AppStoreTickInterval,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

func (s *deploymentService) publishPhase(sessionId uuid.UUID, data map[string]interface{}) {
	event := events.NewSessionEvent(constant.EventDeploymentPhase, sessionId.String(), data)

	if s.publisherService != nil {
		if err := s.publisherService.Publish(context.Background(), event); err != nil {
			s.logger.Warn("DeploymentService", "Phase event publish failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(context.Background(), event); err != nil {
			s.logger.Warn("DeploymentService", "NATS mirror failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

// --- Web ---

func (s *deploymentService) OpenWeb(ctx context.Context, sessionId uuid.UUID) (*dto.WebDeploymentResponse, error) {
	s.mu.Lock()
	if prev, ok := s.web[sessionId]; ok {
		prev.Dismiss()
	}

	pipeline := deploy.NewWebPipeline(s.clock, s.webInterval, func(snap deploy.WebSnapshot) {
		s.publishPhase(sessionId, webPhaseData(snap))
	})
	s.web[sessionId] = pipeline
	s.mu.Unlock()

	pipeline.Start()

	s.logger.Info("DeploymentService", "Web publish started", map[string]interface{}{
		"session_id": sessionId,
	})

	return webSnapshotToDTO(pipeline.Snapshot()), nil
}

func (s *deploymentService) WebStatus(ctx context.Context, sessionId uuid.UUID) (*dto.WebDeploymentResponse, error) {
	s.mu.Lock()
	pipeline, ok := s.web[sessionId]
	s.mu.Unlock()
	if !ok {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "no web deployment in progress")
	}
	return webSnapshotToDTO(pipeline.Snapshot()), nil
}

func (s *deploymentService) DismissWeb(ctx context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	pipeline, ok := s.web[sessionId]
	if ok {
		delete(s.web, sessionId)
	}
	s.mu.Unlock()
	if !ok {
		return serverutils.NewAppError(fiber.StatusNotFound, "no web deployment in progress")
	}
	pipeline.Dismiss()
	return nil
}

// --- App store ---

func (s *deploymentService) OpenAppStore(ctx context.Context, sessionId uuid.UUID) (*dto.AppStoreDeploymentResponse, error) {
	s.mu.Lock()
	if prev, ok := s.appStore[sessionId]; ok {
		prev.Dismiss()
	}

	pipeline := deploy.NewAppStorePipeline(s.clock, s.appStoreInterval, func(snap deploy.AppStoreSnapshot) {
		s.publishPhase(sessionId, appStorePhaseData(snap))
	})
	s.appStore[sessionId] = pipeline
	s.mu.Unlock()

	s.logger.Info("DeploymentService", "App store submission opened", map[string]interface{}{
		"session_id": sessionId,
	})

	return appStoreSnapshotToDTO(pipeline.Snapshot()), nil
}

func (s *deploymentService) AppStoreStatus(ctx context.Context, sessionId uuid.UUID) (*dto.AppStoreDeploymentResponse, error) {
	s.mu.Lock()
	pipeline, ok := s.appStore[sessionId]
	s.mu.Unlock()
	if !ok {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "no app store submission in progress")
	}
	return appStoreSnapshotToDTO(pipeline.Snapshot()), nil
}

func (s *deploymentService) SubmitCredentials(ctx context.Context, sessionId uuid.UUID, req *dto.SubmitCredentialsRequest) (*dto.AppStoreDeploymentResponse, error) {
	s.mu.Lock()
	pipeline, ok := s.appStore[sessionId]
	s.mu.Unlock()
	if !ok {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "no app store submission in progress")
	}

	// Credentials ride through the submission call and are dropped; they
	// never land in a log, event or store.
	err := pipeline.Submit(deploy.Credentials{
		AccessToken: req.AccessToken,
		KeyID:       req.KeyId,
		IssuerID:    req.IssuerId,
		PrivateKey:  req.PrivateKey,
	})
	if err != nil {
		return nil, serverutils.NewAppError(fiber.StatusConflict, err.Error())
	}

	return appStoreSnapshotToDTO(pipeline.Snapshot()), nil
}

func (s *deploymentService) DismissAppStore(ctx context.Context, sessionId uuid.UUID) error {
	s.mu.Lock()
	pipeline, ok := s.appStore[sessionId]
	if ok {
		delete(s.appStore, sessionId)
	}
	s.mu.Unlock()
	if !ok {
		return serverutils.NewAppError(fiber.StatusNotFound, "no app store submission in progress")
	}
	pipeline.Dismiss()
	return nil
}

// --- DTO / event helpers ---

func webSnapshotToDTO(snap deploy.WebSnapshot) *dto.WebDeploymentResponse {
	return &dto.WebDeploymentResponse{
		Phase:        snap.PhaseName,
		PublishedURL: snap.PublishedURL,
	}
}

func appStoreSnapshotToDTO(snap deploy.AppStoreSnapshot) *dto.AppStoreDeploymentResponse {
	resp := &dto.AppStoreDeploymentResponse{Phase: snap.PhaseName}
	for _, step := range snap.Steps {
		resp.Steps = append(resp.Steps, dto.DeploymentStepDTO{
			Name:  step.Name,
			State: string(step.State),
		})
	}
	return resp
}

func webPhaseData(snap deploy.WebSnapshot) map[string]interface{} {
	data := map[string]interface{}{
		"kind":  string(deploy.KindWeb),
		"phase": snap.PhaseName,
	}
	if snap.PublishedURL != "" {
		data["published_url"] = snap.PublishedURL
	}
	return data
}

func appStorePhaseData(snap deploy.AppStoreSnapshot) map[string]interface{} {
	steps := make([]map[string]interface{}, 0, len(snap.Steps))
	for _, step := range snap.Steps {
		steps = append(steps, map[string]interface{}{
			"name":  step.Name,
			"state": string(step.State),
		})
	}
	return map[string]interface{}{
		"kind":  string(deploy.KindAppStore),
		"phase": snap.PhaseName,
		"steps": steps,
	}
}
