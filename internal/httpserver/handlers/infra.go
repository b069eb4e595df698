package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/skyfold/flightdeck/internal/httpserver/deps"
)

type componentStatus struct {
	OK              bool   `json:"ok"`
	AdvisoriesCount *int   `json:"advisories_count,omitempty"`
	LastReload      string `json:"last_reload,omitempty"`
	Mode            string `json:"mode,omitempty"`
	Impact          string `json:"impact,omitempty"`
	Error           string `json:"error,omitempty"`
}

type infraResponse struct {
	ServiceMode string                     `json:"service_mode"`
	Components  map[string]componentStatus `json:"components"`
}

func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		components := map[string]componentStatus{
			"provider":   checkProvider(d),
			"advisories": checkAdvisories(d),
			"redis":      checkRedis(d),
		}

		response := infraResponse{
			ServiceMode: determineServiceMode(components),
			Components:  components,
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// determineServiceMode summarizes component health: the provider is the
// only critical dependency, everything else only degrades the output.
func determineServiceMode(components map[string]componentStatus) string {
	if provider, exists := components["provider"]; exists && !provider.OK {
		return "critical"
	}
	for name, c := range components {
		if name != "provider" && !c.OK {
			return "degraded"
		}
	}
	return "optimal"
}

func checkProvider(d deps.Deps) componentStatus {
	if d.Provider == nil {
		return componentStatus{
			OK:     false,
			Impact: "searches-unavailable",
			Error:  "client not initialized",
		}
	}
	return componentStatus{
		OK:   true,
		Mode: "live",
	}
}

func checkAdvisories(d deps.Deps) componentStatus {
	if d.Advisories == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "route-warnings-disabled",
		}
	}

	count := d.Advisories.Count()
	lastReload := "never"
	if t := d.Advisories.GetLastReload(); !t.IsZero() {
		lastReload = t.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:              true,
		AdvisoriesCount: &count,
		LastReload:      lastReload,
	}
}

func checkRedis(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:     false,
			Mode:   "disabled",
			Impact: "result-cache-disabled",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:     false,
			Mode:   "degraded",
			Impact: "result-cache-disabled",
			Error:  "timeout",
		}
	}

	return componentStatus{
		OK:     true,
		Mode:   "optimal",
		Impact: "result-cache-enabled",
	}
}
