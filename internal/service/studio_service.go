package service

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"vibecode-be/internal/constant"
	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/logger"
	"vibecode-be/internal/pkg/serverutils"
	"vibecode-be/internal/repository/contract"
	"vibecode-be/internal/repository/memory"
	"vibecode-be/pkg/events"
	"vibecode-be/pkg/store"
	"vibecode-be/pkg/synth"
)

const sessionTokenTTL = 24 * time.Hour

type IStudioService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionSnapshotResponse, error)
	SubmitPrompt(ctx context.Context, sessionId uuid.UUID, req *dto.SubmitPromptRequest) (*dto.SubmitPromptResponse, error)
	AttachVisualReference(ctx context.Context, sessionId uuid.UUID, req *dto.AttachVisualContextRequest) (*dto.SessionSnapshotResponse, error)
	ClearVisualReference(ctx context.Context, sessionId uuid.UUID) error
	SetActiveView(ctx context.Context, sessionId uuid.UUID, req *dto.SetActiveViewRequest) error
	GetArtifact(ctx context.Context, sessionId uuid.UUID) (*dto.ArtifactResponse, error)
	ListArchivedSessions(ctx context.Context) ([]*dto.ArchivedSessionResponse, error)
}

type studioService struct {
	sessions         *memory.SessionRepository
	archive          contract.SessionArchiveRepository // nil when archiving is disabled
	provider         synth.Provider
	publisherService IPublisherService
	logger           logger.ILogger
	synthTimeout     time.Duration

	// Per-session mutexes. The store.Session aggregate is not internally
	// synchronized; every mutation happens under the session's lock.
	locks sync.Map

	now func() time.Time
}

func NewStudioService(
	sessions *memory.SessionRepository,
	archive contract.SessionArchiveRepository,
	provider synth.Provider,
	publisherService IPublisherService,
	log logger.ILogger,
	synthTimeout time.Duration,
) IStudioService {
	return &studioService{
		sessions:         sessions,
		archive:          archive,
		provider:         provider,
		publisherService: publisherService,
		logger:           log,
		synthTimeout:     synthTimeout,
		now:              time.Now,
	}
}

func (s *studioService) lockFor(sessionId uuid.UUID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(sessionId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *studioService) publish(ctx context.Context, eventType string, sessionId uuid.UUID, data map[string]interface{}) {
	if s.publisherService == nil {
		return
	}
	event := events.NewSessionEvent(eventType, sessionId.String(), data)
	if err := s.publisherService.Publish(ctx, event); err != nil {
		s.logger.Warn("StudioService", "Event publish failed", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func (s *studioService) publishTurn(ctx context.Context, sessionId uuid.UUID, turn *store.Turn) {
	s.publish(ctx, constant.EventTurnAppended, sessionId, map[string]interface{}{
		"turn_id":    turn.Id.String(),
		"role":       turn.Role,
		"text":       turn.Text,
		"created_at": turn.CreatedAt.Format(time.RFC3339Nano),
	})
}

func (s *studioService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	session := &store.Session{
		Id:         uuid.New(),
		Artifact:   constant.InitialArtifact,
		ActiveView: store.ViewPreview,
		CreatedAt:  s.now(),
	}
	greeting := session.AppendTurn(constant.TurnRoleAssistant, constant.SessionGreetingMessage, s.now())

	s.sessions.Save(session)

	token, err := serverutils.GenerateSessionToken(session.Id, sessionTokenTTL)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, constant.EventSessionCreated, session.Id, map[string]interface{}{
		"artifact":    session.Artifact,
		"active_view": session.ActiveView,
		"created_at":  session.CreatedAt.Format(time.RFC3339Nano),
	})
	s.publishTurn(ctx, session.Id, greeting)

	s.logger.Info("StudioService", "Session created", map[string]interface{}{
		"session_id": session.Id,
	})

	return &dto.CreateSessionResponse{
		Id:        session.Id,
		Token:     token,
		Artifact:  session.Artifact,
		Turns:     turnsToDTO(session.Turns),
		CreatedAt: session.CreatedAt,
	}, nil
}

func (s *studioService) GetSession(ctx context.Context, sessionId uuid.UUID) (*dto.SessionSnapshotResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	return snapshotToDTO(session), nil
}

// SubmitPrompt runs one synthesis round-trip. The conversation log gains
// the user turn first, then exactly one terminal assistant turn once the
// round-trip settles. A failed generation leaves the artifact untouched.
func (s *studioService) SubmitPrompt(ctx context.Context, sessionId uuid.UUID, req *dto.SubmitPromptRequest) (*dto.SubmitPromptResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	instruction := strings.TrimSpace(req.Prompt)
	if instruction == "" {
		// Blank input is ignored entirely, no turns, no state change.
		mu := s.lockFor(sessionId)
		mu.Lock()
		defer mu.Unlock()
		return &dto.SubmitPromptResponse{
			Artifact:   session.Artifact,
			Turns:      turnsToDTO(session.Turns),
			ActiveView: session.ActiveView,
			Succeeded:  true,
		}, nil
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	if session.Busy {
		mu.Unlock()
		return nil, serverutils.NewAppError(fiber.StatusConflict, "a generation is already in progress")
	}
	session.Busy = true

	userTurn := session.AppendTurn(constant.TurnRoleUser, instruction, s.now())

	// The visual context slot is consumed at submission time, before the
	// outcome is known. A failed generation does not restore it.
	refURL := session.VisualRef.BestURL()
	hadRef := session.VisualRef != nil
	session.VisualRef = nil

	viewChanged := session.ActiveView != store.ViewPreview
	session.ActiveView = store.ViewPreview

	existing := session.Artifact
	mu.Unlock()

	s.publishTurn(ctx, sessionId, userTurn)
	if hadRef {
		s.publish(ctx, constant.EventVisualContextCleared, sessionId, nil)
	}
	if viewChanged {
		s.publish(ctx, constant.EventViewChanged, sessionId, map[string]interface{}{
			"view": store.ViewPreview,
		})
	}

	genCtx, cancel := context.WithTimeout(ctx, s.synthTimeout)
	artifact, genErr := s.provider.Generate(genCtx, &synth.Request{
		Instruction:        instruction,
		ExistingArtifact:   existing,
		VisualReferenceURL: refURL,
	})
	cancel()

	mu.Lock()
	var terminal *store.Turn
	if genErr != nil || strings.TrimSpace(artifact) == "" {
		terminal = session.AppendTurn(constant.TurnRoleAssistant, constant.SynthesisFailureMessage, s.now())
	} else {
		session.Artifact = artifact
		terminal = session.AppendTurn(constant.TurnRoleAssistant, constant.SynthesisAckMessage, s.now())
	}
	session.Busy = false
	succeeded := genErr == nil && session.Artifact == artifact
	resp := &dto.SubmitPromptResponse{
		Artifact:   session.Artifact,
		Turns:      turnsToDTO(session.Turns),
		ActiveView: session.ActiveView,
		Succeeded:  succeeded,
	}
	mu.Unlock()

	s.sessions.Save(session)

	if succeeded {
		s.publish(ctx, constant.EventArtifactReplaced, sessionId, map[string]interface{}{
			"artifact":    resp.Artifact,
			"active_view": resp.ActiveView,
		})
	} else {
		s.logger.Error("StudioService", "Synthesis failed", map[string]interface{}{
			"session_id": sessionId,
			"error":      errText(genErr),
		})
	}
	s.publishTurn(ctx, sessionId, terminal)

	return resp, nil
}

func (s *studioService) AttachVisualReference(ctx context.Context, sessionId uuid.UUID, req *dto.AttachVisualContextRequest) (*dto.SessionSnapshotResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	// Overwriting a previously attached reference is allowed; the slot
	// holds at most one.
	session.VisualRef = &store.VisualReference{
		Id:        strconv.FormatInt(req.Id, 10),
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		HiDPIURL:  req.HiDPIURL,
		SourceURL: req.SourceURL,
	}
	turn := session.AppendTurn(constant.TurnRoleAssistant, constant.VisualContextAddedMessage, s.now())
	snapshot := snapshotToDTO(session)
	mu.Unlock()

	s.sessions.Save(session)

	s.publish(ctx, constant.EventVisualContextAttached, sessionId, map[string]interface{}{
		"image_url":  session.VisualRef.BestURL(),
		"title":      req.Title,
		"source_url": req.SourceURL,
	})
	s.publishTurn(ctx, sessionId, turn)

	return snapshot, nil
}

func (s *studioService) ClearVisualReference(ctx context.Context, sessionId uuid.UUID) error {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	had := session.VisualRef != nil
	session.VisualRef = nil
	mu.Unlock()

	s.sessions.Save(session)

	if had {
		s.publish(ctx, constant.EventVisualContextCleared, sessionId, nil)
	}
	return nil
}

func (s *studioService) SetActiveView(ctx context.Context, sessionId uuid.UUID, req *dto.SetActiveViewRequest) error {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	changed := session.ActiveView != req.View
	session.ActiveView = req.View
	mu.Unlock()

	s.sessions.Save(session)

	if changed {
		s.publish(ctx, constant.EventViewChanged, sessionId, map[string]interface{}{
			"view": req.View,
		})
	}
	return nil
}

func (s *studioService) GetArtifact(ctx context.Context, sessionId uuid.UUID) (*dto.ArtifactResponse, error) {
	session, found := s.sessions.Get(sessionId)
	if !found {
		return nil, serverutils.NewAppError(fiber.StatusNotFound, "session not found")
	}

	mu := s.lockFor(sessionId)
	mu.Lock()
	defer mu.Unlock()

	return &dto.ArtifactResponse{Artifact: session.Artifact}, nil
}

// ListArchivedSessions reads the durable archive. The live loop never
// depends on this; it exists for inspecting past sessions.
func (s *studioService) ListArchivedSessions(ctx context.Context) ([]*dto.ArchivedSessionResponse, error) {
	if s.archive == nil {
		return nil, serverutils.NewAppError(fiber.StatusNotImplemented, "session archive is not configured")
	}

	records, err := s.archive.FindAll(ctx)
	if err != nil {
		s.logger.Error("StudioService", "Archive read failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	out := make([]*dto.ArchivedSessionResponse, 0, len(records))
	for _, r := range records {
		out = append(out, &dto.ArchivedSessionResponse{
			Id:         r.Id,
			ActiveView: r.ActiveView,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		})
	}
	return out, nil
}

// --- DTO helpers ---

func turnsToDTO(turns []*store.Turn) []dto.TurnDTO {
	out := make([]dto.TurnDTO, 0, len(turns))
	for _, t := range turns {
		out = append(out, dto.TurnDTO{
			Id:        t.Id,
			Role:      t.Role,
			Text:      t.Text,
			CreatedAt: t.CreatedAt,
		})
	}
	return out
}

func snapshotToDTO(s *store.Session) *dto.SessionSnapshotResponse {
	resp := &dto.SessionSnapshotResponse{
		Id:         s.Id,
		Artifact:   s.Artifact,
		Turns:      turnsToDTO(s.Turns),
		ActiveView: s.ActiveView,
		Busy:       s.Busy,
		CreatedAt:  s.CreatedAt,
	}
	if s.VisualRef != nil {
		id, _ := strconv.ParseInt(s.VisualRef.Id, 10, 64)
		resp.VisualRef = &dto.VisualReferenceDTO{
			Id:        id,
			Title:     s.VisualRef.Title,
			ImageURL:  s.VisualRef.ImageURL,
			HiDPIURL:  s.VisualRef.HiDPIURL,
			SourceURL: s.VisualRef.SourceURL,
		}
	}
	return resp
}

func errText(err error) string {
	if err == nil {
		return "empty artifact returned"
	}
	return err.Error()
}
