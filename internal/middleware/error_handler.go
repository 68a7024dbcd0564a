package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the
// gin context after the handler chain runs. Handlers that attach an
// error without writing a response get a generic 500; handlers that
// already responded keep their status and body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("error", err.Error()).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			errorResp := dto.NewError(dto.ErrCodeInternal, message).
				WithRequestID(requestID)
			c.JSON(http.StatusInternalServerError, errorResp)
		}
	}
}
