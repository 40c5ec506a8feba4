package repository

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"github.com/sitepulse/sitepulse/internal/model"

	"github.com/redis/go-redis/v9"
)

// cachedMonitorRepository fronts monitor reads with redis. The scheduler
// reloads each monitor's config on every tick, so the hot path is
// GetMonitorByID; writes invalidate before delegating.
type cachedMonitorRepository struct {
	redis    *redis.Client
	repo     MonitorRepository
	cacheTTL time.Duration
}

func (*cachedMonitorRepository) monitorCacheKey(id int) string {
	return fmt.Sprintf("monitor:%d", id)
}

func (c *cachedMonitorRepository) CreateMonitor(ctx context.Context, monitor model.Monitor) (model.Monitor, error) {
	return c.repo.CreateMonitor(ctx, monitor)
}

func (c *cachedMonitorRepository) GetMonitorByID(ctx context.Context, monitorID int) (model.Monitor, error) {
	key := c.monitorCacheKey(monitorID)
	data, err := c.redis.Get(ctx, key).Bytes()
	if err == nil {
		var monitor model.Monitor
		if e := gob.NewDecoder(bytes.NewReader(data)).Decode(&monitor); e == nil {
			return monitor, nil
		}
		// undecodable entry: fall through to the source of truth
		c.redis.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		// redis being down must not take monitoring down with it
		return c.repo.GetMonitorByID(ctx, monitorID)
	}

	monitor, err := c.repo.GetMonitorByID(ctx, monitorID)
	if err != nil {
		return monitor, err
	}
	var buf bytes.Buffer
	if e := gob.NewEncoder(&buf).Encode(monitor); e == nil {
		c.redis.Set(ctx, key, buf.Bytes(), c.cacheTTL)
	}
	return monitor, nil
}

func (c *cachedMonitorRepository) ListMonitors(ctx context.Context) ([]model.Monitor, error) {
	return c.repo.ListMonitors(ctx)
}

func (c *cachedMonitorRepository) UpdateMonitor(ctx context.Context, updatedData model.Monitor) (model.Monitor, error) {
	if err := c.redis.Del(ctx, c.monitorCacheKey(updatedData.ID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return model.Monitor{}, fmt.Errorf("cachedMonitorRepository.UpdateMonitor: %w", err)
	}
	return c.repo.UpdateMonitor(ctx, updatedData)
}

func (c *cachedMonitorRepository) DeleteMonitorByID(ctx context.Context, monitorID int) error {
	if err := c.redis.Del(ctx, c.monitorCacheKey(monitorID)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("cachedMonitorRepository.DeleteMonitorByID: %w", err)
	}
	return c.repo.DeleteMonitorByID(ctx, monitorID)
}

func (c *cachedMonitorRepository) UpdateLastState(ctx context.Context, monitorID int, online bool, checkedAt time.Time) error {
	c.redis.Del(ctx, c.monitorCacheKey(monitorID))
	return c.repo.UpdateLastState(ctx, monitorID, online, checkedAt)
}

func NewCachedMonitorRepository(redisClient *redis.Client, repo MonitorRepository, cacheTTL time.Duration) MonitorRepository {
	return &cachedMonitorRepository{
		redis:    redisClient,
		repo:     repo,
		cacheTTL: cacheTTL,
	}
}
