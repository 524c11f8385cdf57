package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const actorIDKey contextKey = "actor_id"

// WithActorID stamps the acting user's id onto the request context.
func WithActorID(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDKey, actorID)
}

// ActorID returns the acting user's id, or uuid.Nil when absent.
func ActorID(ctx context.Context) uuid.UUID {
	if v, ok := ctx.Value(actorIDKey).(uuid.UUID); ok {
		return v
	}
	return uuid.Nil
}
