// file: internal/middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"jobtrust/internal/contextutils"
	"jobtrust/internal/services"
)

// AdminRole is the role claim required on admin tokens
const AdminRole = "admin"

// AdminOnly guards moderation routes with an HS256 bearer token carrying
// role=admin. An empty secret leaves the routes open.
func AdminOnly(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := GetRequestLogger(r)

			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, r, services.NewUnauthorizedError("Missing bearer token"), http.StatusUnauthorized)
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				logger.Warn("Admin token rejected", zap.Error(err))
				writeError(w, r, services.NewUnauthorizedError("Invalid token"), http.StatusUnauthorized)
				return
			}

			if role, _ := claims["role"].(string); role != AdminRole {
				logger.Warn("Admin route denied", zap.String("role", role))
				writeError(w, r, services.NewForbiddenError("Admin role required"), http.StatusForbidden)
				return
			}

			subject, _ := claims.GetSubject()
			ctx := contextutils.WithAdminSubject(r.Context(), subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
