package handlers

import (
	"context"
	"net/http"
	"time"

	"contact-scout/internal/api"
	"contact-scout/internal/db"
	"contact-scout/internal/match"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and runtime information
type SystemHandler struct {
	database      *db.Database
	matcherConfig match.Config
	healthTimeout time.Duration
	startedAt     time.Time
}

// NewSystemHandler creates a new system handler. database may be nil
// when the server runs without a cache.
func NewSystemHandler(database *db.Database, matcherConfig match.Config, healthTimeout time.Duration) *SystemHandler {
	return &SystemHandler{
		database:      database,
		matcherConfig: matcherConfig,
		healthTimeout: healthTimeout,
		startedAt:     time.Now(),
	}
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Uptime   string `json:"uptime"`
}

// InfoResponse describes the running matcher configuration.
type InfoResponse struct {
	Service    string             `json:"service"`
	Algorithm  string             `json:"algorithm"`
	MaxScore   float64            `json:"max_score"`
	Weights    map[string]float64 `json:"weights"`
	Thresholds map[string]float64 `json:"thresholds"`
}

// Health reports liveness plus cache database reachability. A missing
// or unreachable database degrades the status but keeps the endpoint
// returning 200, since matching itself needs no database.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:   "ok",
		Database: "disabled",
		Uptime:   time.Since(h.startedAt).Round(time.Second).String(),
	}

	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.healthTimeout)
		defer cancel()

		if err := h.database.HealthCheck(ctx); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
		} else {
			resp.Database = "ok"
		}
	}

	api.SendSuccess(c, http.StatusOK, resp, nil)
}

// Info returns the active scoring configuration.
func (h *SystemHandler) Info(c *gin.Context) {
	resp := InfoResponse{
		Service:   "contact-scout",
		Algorithm: string(h.matcherConfig.Algorithm),
		MaxScore:  h.matcherConfig.MaxScore(),
		Weights: map[string]float64{
			"email":     h.matcherConfig.EmailWeight,
			"name":      h.matcherConfig.NameWeight,
			"company":   h.matcherConfig.CompanyWeight,
			"location":  h.matcherConfig.LocationWeight,
			"job_title": h.matcherConfig.JobTitleWeight,
		},
		Thresholds: map[string]float64{
			"name":    h.matcherConfig.NameThreshold,
			"company": h.matcherConfig.CompanyThreshold,
		},
	}

	api.SendSuccess(c, http.StatusOK, resp, nil)
}
