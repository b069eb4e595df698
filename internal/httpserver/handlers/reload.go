package handlers

import (
	"net/http"

	"github.com/skyfold/flightdeck/internal/httpserver/deps"
	"github.com/skyfold/flightdeck/internal/logger"
)

// Reload triggers a manual reload of the route advisory file
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.AdvisoryReloadTrigger == nil {
			http.Error(w, "advisories are disabled", http.StatusNotFound)
			return
		}

		select {
		case d.AdvisoryReloadTrigger <- struct{}{}:
			d.Logger.Info("manual advisory reload triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("reload triggered\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("advisory reload already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("reload already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
