// Package middleware provides JWT authentication middleware.
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/tanphat1102/kitchen-chicken-sub000/internal/domain/dto"
	"github.com/tanphat1102/kitchen-chicken-sub000/internal/i18n"
)

// StaffClaims are the claims carried by staff dashboard tokens. Tokens
// are issued by the identity service; this service only verifies them.
type StaffClaims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTAuth returns a middleware that validates bearer tokens signed with
// the shared HMAC secret.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.GetLocale(c)
		requestID := GetRequestID(c)

		abort := func(key string) {
			message := i18n.GetTranslator().Translate(key, locale)
			errorResp := dto.NewError(dto.ErrCodeUnauthorized, message).
				WithRequestID(requestID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResp)
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abort(i18n.ErrKeyTokenRequired)
			return
		}

		claims := &StaffClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abort(i18n.ErrKeyInvalidToken)
			return
		}

		c.Set("staff_subject", claims.Subject)
		c.Set("staff_name", claims.Name)
		c.Set("staff_roles", claims.Roles)

		c.Next()
	}
}
