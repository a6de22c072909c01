package controllers

import (
	"context"
	"net/http"

	"github.com/radhanandani03-png/Lotoria/api/responses"
	pkgerrors "github.com/radhanandani03-png/Lotoria/pkg/errors"
	"github.com/radhanandani03-png/Lotoria/pkg/logger"
)

// Pinger is any dependency that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health reports process liveness without touching dependencies.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Ready checks the database and redis before reporting readiness.
func Ready(db Pinger, cache Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok", "redis": "ok"}
		failed := false
		if db == nil || db.Ping(r.Context()) != nil {
			checks["database"] = "unavailable"
			failed = true
		}
		if cache == nil || cache.Ping(r.Context()) != nil {
			checks["redis"] = "unavailable"
			failed = true
		}
		if failed {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependency check failed").
				WithDetails(checks)
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, checks)
	}
}
