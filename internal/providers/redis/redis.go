package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const scanBatch = 100

type RedisProvider struct {
	Client *redis.Client
	URL    string
	logger *zap.SugaredLogger
	ttl    time.Duration
}

func NewRedisProvider(redisURL string, logger *zap.Logger, ttl time.Duration) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{
			Addr: redisURL,
			DB:   0,
		}
	}
	opts.MaxRetries = 3
	opts.MinRetryBackoff = 100 * time.Millisecond
	opts.MaxRetryBackoff = 500 * time.Millisecond

	client := redis.NewClient(opts)

	provider := &RedisProvider{
		Client: client,
		URL:    redisURL,
		logger: logger.Sugar(),
		ttl:    ttl,
	}

	client.AddHook(&loggerHook{logger: provider.logger})

	if err := client.Ping(context.Background()).Err(); err != nil {
		provider.logger.Errorw("Redis connection failed at startup", "error", err)
	} else {
		provider.logger.Infow("Redis connected",
			"url", redisURL,
			"db", opts.DB,
			"default_ttl", ttl.String(),
		)
	}

	return provider
}

// GetJSON decodes the value under key into dst. A missing key is reported
// as (false, nil).
func (r *RedisProvider) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores value under key. A non-positive ttl uses the provider default.
func (r *RedisProvider) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.Client.Set(ctx, key, data, ttl).Err()
}

func (r *RedisProvider) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}

// DeleteByPattern removes every key matching pattern, iterating with SCAN.
func (r *RedisProvider) DeleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		if err := r.Delete(ctx, keys...); err != nil {
			return err
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (r *RedisProvider) Close() error {
	return r.Client.Close()
}

// StartConnectionMonitor logs connection loss and recovery until ctx is done.
func (r *RedisProvider) StartConnectionMonitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	wasConnected := r.Client.Ping(ctx).Err() == nil

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := r.Client.Ping(ctx).Err()
			switch {
			case err != nil && wasConnected:
				r.logger.Errorw("Redis disconnected", "error", err)
				wasConnected = false
			case err == nil && !wasConnected:
				r.logger.Infow("Redis reconnected", "url", r.URL)
				wasConnected = true
			}
		}
	}
}

type loggerHook struct {
	logger *zap.SugaredLogger
}

func (h *loggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.logger.Errorw("Redis dial failed", "network", network, "addr", addr, "error", err)
		}
		return conn, err
	}
}

func (h *loggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.log(cmd, time.Since(start), err)
		return err
	}
}

func (h *loggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		duration := time.Since(start)
		for _, cmd := range cmds {
			h.log(cmd, duration, err)
		}
		return err
	}
}

func (h *loggerHook) log(cmd redis.Cmder, duration time.Duration, err error) {
	if cmd.Name() == "ping" && err == nil {
		return
	}
	fields := []interface{}{
		"command", cmd.Name(),
		"duration_ms", duration.Milliseconds(),
	}
	// redis.Nil is a cache miss, not a failure.
	if err != nil && !errors.Is(err, redis.Nil) {
		h.logger.Errorw("Redis command failed", append(fields, "error", err)...)
		return
	}
	h.logger.Debugw("Redis command executed", fields...)
}
