package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/logger"
)

// Recovery returns a middleware that converts panics into 500 responses.
// The panic value is logged with the request ID so the failing request
// can be traced through the persisted logs.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				log.Error().
					Str("request_id", requestID).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Interface("panic", r).
					Msg("PANIC recovered")

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				errorResp := dto.NewError(dto.ErrCodeInternal, message).
					WithRequestID(requestID)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorResp)
			}
		}()
		c.Next()
	}
}
