package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"cryptopay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const healthPingTimeout = 2 * time.Second

type dependencyHealth struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// HealthCheck handles GET /health. Dependencies are pinged in parallel, each
// under its own timeout; any failure reports the service as degraded.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			mu      sync.Mutex
			results = make(map[string]dependencyHealth, len(checkers))
			g       errgroup.Group
		)
		for _, checker := range checkers {
			g.Go(func() error {
				result := ping(c.Request.Context(), checker)
				mu.Lock()
				results[checker.Name()] = result
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()

		status, code := "healthy", http.StatusOK
		for _, r := range results {
			if r.Status != "healthy" {
				status, code = "degraded", http.StatusServiceUnavailable
				break
			}
		}
		c.JSON(code, gin.H{"status": status, "dependencies": results})
	}
}

func ping(ctx context.Context, checker ports.HealthChecker) dependencyHealth {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	err := checker.Ping(ctx)
	result := dependencyHealth{Status: "healthy", LatencyMS: time.Since(start).Milliseconds()}
	if err != nil {
		result.Status = "unhealthy"
		result.Error = err.Error()
	}
	return result
}
