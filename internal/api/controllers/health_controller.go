package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"resto/internal/infra"
	"resto/internal/services"
)

type HealthController struct {
	db       *gorm.DB
	identity services.IdentityClientInterface
}

func NewHealthController(db *gorm.DB, identity services.IdentityClientInterface) *HealthController {
	return &HealthController{
		db:       db,
		identity: identity,
	}
}

type healthCheck struct {
	OK        bool   `json:"ok"`
	LatencyMS int64  `json:"latency,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Health reports the composite status of the identity provider and the
// database: 200 when both are reachable, 503 otherwise.
func (hc *HealthController) Health(c *gin.Context) {
	checks := map[string]healthCheck{}

	authCheck := healthCheck{OK: true}
	if err := hc.identity.Health(c.Request.Context()); err != nil {
		authCheck = healthCheck{OK: false, Error: err.Error()}
	}
	checks["auth"] = authCheck

	dbCheck := healthCheck{OK: true}
	start := time.Now()
	if err := infra.Ping(hc.db); err != nil {
		dbCheck = healthCheck{OK: false, Error: err.Error()}
	} else {
		dbCheck.LatencyMS = time.Since(start).Milliseconds()
	}
	checks["database"] = dbCheck

	status := http.StatusOK
	overall := "healthy"
	if !authCheck.OK || !dbCheck.OK {
		status = http.StatusServiceUnavailable
		overall = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":    overall,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
