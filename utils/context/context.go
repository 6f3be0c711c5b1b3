package context

import (
	"context"

	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
)

// GetActor returns the identity the transport attached to the request.
func GetActor(ctx context.Context) (model.Actor, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}

func WithActor(ctx context.Context, actor model.Actor) context.Context {
	return context.WithValue(ctx, constant.ActorKey, actor)
}

func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(constant.RequestIDKey).(string)
	return id
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.RequestIDKey, id)
}
