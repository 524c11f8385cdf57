package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ideaforge/ideaforge-backend/internal/http/response"
	"github.com/ideaforge/ideaforge-backend/internal/platform/ctxutil"
	"github.com/ideaforge/ideaforge-backend/internal/platform/logger"
)

type ActorMiddleware struct {
	log *logger.Logger
}

func NewActorMiddleware(baseLog *logger.Logger) *ActorMiddleware {
	return &ActorMiddleware{log: baseLog.With("middleware", "ActorMiddleware")}
}

// RequireActor reads the authenticated user's id from the X-Actor-ID header
// (stamped upstream by the auth layer, which is external to this core) and
// puts it on the request context.
func (m *ActorMiddleware) RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID, err := uuid.Parse(c.GetHeader("X-Actor-ID"))
		if err != nil || actorID == uuid.Nil {
			response.RespondError(c, http.StatusUnauthorized, "missing_actor", err)
			c.Abort()
			return
		}
		ctx := ctxutil.WithActorID(c.Request.Context(), actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
