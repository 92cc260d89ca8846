package utils

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const healthCheckTimeout = 2 * time.Second

type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Services  []Service `json:"services"`
}

type Service struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type PingFunc func(ctx context.Context) error

type HealthChecker struct {
	checks []namedCheck
}

type namedCheck struct {
	name string
	ping PingFunc
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{}
}

func (h *HealthChecker) Add(name string, ping PingFunc) *HealthChecker {
	h.checks = append(h.checks, namedCheck{name: name, ping: ping})
	return h
}

func (h *HealthChecker) AddPostgres(db *gorm.DB) *HealthChecker {
	return h.Add("PostgreSQL", func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
}

func (h *HealthChecker) AddRedis(client *redis.Client) *HealthChecker {
	return h.Add("Redis", func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	services := make([]Service, 0, len(h.checks))
	overallStatus := "healthy"

	for _, c := range h.checks {
		service := Service{Name: c.name, Status: "up"}
		pingCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		if err := c.ping(pingCtx); err != nil {
			service.Status = "down"
			service.Message = err.Error()
			overallStatus = "degraded"
		}
		cancel()
		services = append(services, service)
	}

	return HealthStatus{
		Status:    overallStatus,
		Timestamp: time.Now().UTC(),
		Services:  services,
	}
}
