package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/dashmeta/intraday-metrics-api/internal/config"
)

// openPaths são as rotas acessíveis sem autenticação
var openPaths = map[string]bool{
	"/":            true,
	"/healthcheck": true,
}

// AuthMiddleware valida o header X-Api-Key em todas as rotas protegidas.
// Este serviço não tem usuários nem sessões: a chave única é compartilhada
// com o backend do dashboard que consome a API
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if openPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			apiKey := r.Header.Get("X-Api-Key")
			if apiKey == "" {
				http.Error(w, "X-Api-Key header is required", http.StatusUnauthorized)
				return
			}

			// Comparação em tempo constante para não vazar o tamanho da chave
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(cfg.Auth.APIKey)) != 1 {
				http.Error(w, "Invalid API Key", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
