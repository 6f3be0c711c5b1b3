package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/warehouse/constant"
	"github.com/muhammadheryan/warehouse/model"
	utilsContext "github.com/muhammadheryan/warehouse/utils/context"
	"github.com/muhammadheryan/warehouse/utils/errors"
)

const internalServiceHeader = "X-Internal-Service"

// InternalMiddleware checks the static API key and names the calling service as the actor.
func InternalMiddleware(apiKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+apiKey)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			service := r.Header.Get(internalServiceHeader)
			if service == "" {
				service = "unknown"
			}
			actor := model.Actor{ID: "internal:" + service, Role: "internal"}
			next.ServeHTTP(w, r.WithContext(utilsContext.WithActor(r.Context(), actor)))
		})
	}
}
