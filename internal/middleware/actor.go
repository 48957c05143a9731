package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const actorKey ctxKey = "actor"

// ActorHeader identifica a quien opera. No hay autenticación: el valor se toma
// tal cual y termina en deleted_by / registered_by.
const ActorHeader = "X-User-ID"

// DefaultActor se usa cuando el request no trae header.
const DefaultActor = "system"

func ActorContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor := strings.TrimSpace(r.Header.Get(ActorHeader)); actor != "" {
			if len(actor) > 100 {
				actor = actor[:100]
			}
			r = r.WithContext(context.WithValue(r.Context(), actorKey, actor))
		}
		next.ServeHTTP(w, r)
	})
}

func Actor(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey).(string); ok && v != "" {
		return v
	}
	return DefaultActor
}
