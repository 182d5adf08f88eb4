package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/wedding-composer/internal/api/handlers"
)

// WebhookSecretHeader заголовок с общим секретом платёжного шлюза
const WebhookSecretHeader = "X-Webhook-Secret"

// WebhookSecret пропускает только запросы с верным X-Webhook-Secret.
// Пустой секрет отключает приём вебхуков.
func WebhookSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				handlers.RespondServiceUnavailable(w, "payment webhook is not configured")
				return
			}

			got := r.Header.Get(WebhookSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				handlers.RespondUnauthorized(w, "invalid webhook secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
