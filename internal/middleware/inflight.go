package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
)

// DishIDParam is the route parameter carrying the dish identifier.
const DishIDParam = "dishID"

// InFlightGuard serializes mutations per dish: while one mutation for a
// dish is being processed, further mutations for the same dish are
// rejected with 409 instead of queued. Reads are unaffected.
type InFlightGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewInFlightGuard creates a new in-flight mutation guard.
func NewInFlightGuard() *InFlightGuard {
	return &InFlightGuard{
		inFlight: make(map[string]struct{}),
	}
}

// acquire marks the dish as busy. It reports false when a mutation for
// the dish is already running.
func (g *InFlightGuard) acquire(dishID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[dishID]; busy {
		return false
	}
	g.inFlight[dishID] = struct{}{}
	return true
}

// release clears the busy marker for the dish.
func (g *InFlightGuard) release(dishID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, dishID)
}

// Guard returns a middleware that enforces at most one in-flight
// mutation per dish. Requests without the dish route parameter pass
// through untouched.
func (g *InFlightGuard) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		dishID := c.Param(DishIDParam)
		if dishID == "" {
			c.Next()
			return
		}

		if !g.acquire(dishID) {
			locale := i18n.GetLocale(c)
			requestID := GetRequestID(c)
			message := i18n.GetTranslator().Translate(i18n.ErrKeyMutationInFlight, locale)
			errorResp := dto.NewError(dto.ErrCodeConflict, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusConflict, errorResp)
			return
		}
		defer g.release(dishID)

		c.Next()
	}
}
