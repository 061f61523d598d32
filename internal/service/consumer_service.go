package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"vibecode-be/internal/constant"
	"vibecode-be/internal/dto"
	"vibecode-be/internal/repository/contract"
	"vibecode-be/internal/websocket"
	"vibecode-be/pkg/store"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the session event topic. Every event is fanned
// out to websocket watchers; a subset is additionally archived when a
// database is configured.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	archive   contract.SessionArchiveRepository // nil when archiving is disabled
	hub       *websocket.Hub
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	archive contract.SessionArchiveRepository,
	hub *websocket.Hub,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		archive:   archive,
		hub:       hub,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope dto.SessionEventMessage
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal session event: %v", err)
		msg.Ack() // malformed events are never retriable
		return
	}

	sessionId, err := uuid.Parse(asString(envelope.Data["session_id"]))
	if err != nil {
		log.Printf("[ERROR] Session event without session_id: %s", envelope.Type)
		msg.Ack()
		return
	}

	if cs.hub != nil {
		cs.hub.Send(sessionId, envelope.Type, envelope.Data)
	}

	if cs.archive != nil {
		if err := cs.archiveEvent(ctx, sessionId, &envelope); err != nil {
			log.Printf("[WARN] Archive write failed for %s: %v", envelope.Type, err)
			// Archive is best-effort; never Nack on its account.
		}
	}

	msg.Ack()
}

func (cs *consumerService) archiveEvent(ctx context.Context, sessionId uuid.UUID, e *dto.SessionEventMessage) error {
	switch e.Type {
	case constant.EventSessionCreated:
		return cs.archive.Create(ctx, &store.Session{
			Id:         sessionId,
			Artifact:   asString(e.Data["artifact"]),
			ActiveView: asString(e.Data["active_view"]),
			CreatedAt:  asTime(e.Data["created_at"]),
		})

	case constant.EventTurnAppended:
		turnId, err := uuid.Parse(asString(e.Data["turn_id"]))
		if err != nil {
			return err
		}
		return cs.archive.AppendTurn(ctx, sessionId, &store.Turn{
			Id:        turnId,
			Role:      asString(e.Data["role"]),
			Text:      asString(e.Data["text"]),
			CreatedAt: asTime(e.Data["created_at"]),
		})

	case constant.EventArtifactReplaced:
		return cs.archive.UpdateArtifact(ctx, sessionId,
			asString(e.Data["artifact"]), asString(e.Data["active_view"]))
	}

	return nil
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asTime(v interface{}) time.Time {
	if s, ok := v.(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t
		}
	}
	if t, ok := v.(time.Time); ok {
		return t
	}
	return time.Time{}
}
