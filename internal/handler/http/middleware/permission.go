package middleware

import (
	"net/http"

	"github.com/dayflow-hq/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hq/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePermission gates a route on the capability table. Every role check
// in the HTTP layer goes through this and user.Allowed; roles are never
// compared directly.
func RequirePermission(resource user.Resource, action user.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			if !user.Allowed(user.Role(roleStr), resource, action) {
				response.HandleError(w, user.ErrPermissionDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
