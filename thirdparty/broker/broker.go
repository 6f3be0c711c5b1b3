package broker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
)

// Publisher delivers domain events after the transaction that produced them has committed.
type Publisher interface {
	Publish(ctx context.Context, evt model.Event) error
	Close() error
}

func NewEvent(eventType constant.EventType, key uint64, payload interface{}) model.Event {
	return model.Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        fmt.Sprintf("%d", key),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// NopPublisher drops every event; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.Event) error { return nil }

func (NopPublisher) Close() error { return nil }
