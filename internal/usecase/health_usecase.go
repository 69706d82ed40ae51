package usecase

import (
	"context"
	"time"

	"cv-manager-backend/pkg/logger"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthUsecase struct {
	db    Pinger
	redis func(ctx context.Context) error
}

// NewHealthUsecase reports the database and, when redisCheck is set, Redis.
func NewHealthUsecase(db Pinger, redisCheck func(ctx context.Context) error) HealthUsecase {
	return &healthUsecase{db: db, redis: redisCheck}
}

// Check returns per-dependency status and whether the service is healthy.
// Redis only degrades the status since rate limiting falls back to memory.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"redis":    "disabled",
	}
	healthy := true

	if u.db == nil {
		status["database"] = "unavailable"
		healthy = false
	} else if err := u.db.Ping(ctx); err != nil {
		logger.Log.Error("database health check failed", "error", err)
		status["database"] = "unavailable"
		healthy = false
	}

	if u.redis != nil {
		if err := u.redis(ctx); err != nil {
			logger.Log.Warn("redis health check failed", "error", err)
			status["redis"] = "unavailable"
			status["status"] = "degraded"
		} else {
			status["redis"] = "ok"
		}
	}

	if !healthy {
		status["status"] = "unavailable"
	}
	return status, healthy
}
