package middleware

import (
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-sales-api/pkg/apiErrors"
)

// RequireJSON rejeita requisições com corpo que não seja application/json.
// Usado nas rotas de escrita do estoque.
func RequireJSON() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")

			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "application/json" {
				logrus.Warningf("Content-Type não suportado em %s %s: %q", r.Method, r.URL.Path, contentType)
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O corpo da requisição deve ser application/json", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
