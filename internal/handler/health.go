package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthCheck pings one dependency the service cannot run without.
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// DatabaseCheck pings Postgres, which holds workers, companies, and shifts.
func DatabaseCheck(db *gorm.DB) HealthCheck {
	return HealthCheck{Name: "database", Ping: func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}}
}

// SessionStoreCheck pings Redis, which holds the session revocation list.
func SessionStoreCheck(rdb *redis.Client) HealthCheck {
	return HealthCheck{Name: "sessions", Ping: func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}}
}

// Health reports per-store availability: 200 when every check passes, 503
// with the failing store marked "down" otherwise. Errors themselves are not
// echoed; the body only says which store is unreachable.
func Health(checks ...HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		body := gin.H{}
		healthy := true
		for _, check := range checks {
			status := "up"
			if err := check.Ping(ctx); err != nil {
				status = "down"
				healthy = false
			}
			body[check.Name] = status
		}
		body["success"] = healthy

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, body)
	}
}
