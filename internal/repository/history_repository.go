package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	Append(ctx context.Context, result model.CheckResult) error
	QueryRange(ctx context.Context, monitorID int, since time.Time) ([]model.CheckResult, error)
	QueryByDay(ctx context.Context, monitorID int, days int) ([]model.DayAggregate, error)
	LatestByMonitor(ctx context.Context, monitorID int) (model.CheckResult, error)
	Prune(ctx context.Context, retentionDays int) (int64, error)
}

type historyRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func (h *historyRepository) Append(ctx context.Context, result model.CheckResult) error {
	res := h.db.WithContext(ctx).Create(&result)
	if res.Error != nil {
		return fmt.Errorf("HistoryRepository.Append: %w", res.Error)
	}
	return nil
}

func (h *historyRepository) QueryRange(ctx context.Context, monitorID int, since time.Time) ([]model.CheckResult, error) {
	var results []model.CheckResult
	res := h.db.WithContext(ctx).
		Where("monitor_id = ? AND checked_at >= ?", monitorID, since).
		Order("checked_at ASC").
		Find(&results)
	if res.Error != nil {
		return nil, fmt.Errorf("HistoryRepository.QueryRange: %w", res.Error)
	}
	return results, nil
}

type dayRow struct {
	Day           time.Time
	OnlineCount   int
	TotalCount    int
	AvgResponseMs float64
}

// QueryByDay returns one bucket per calendar day (UTC) for the last N days,
// oldest first. Days with no data are zero-filled so charts keep their
// x-axis after retention pruning.
func (h *historyRepository) QueryByDay(ctx context.Context, monitorID int, days int) ([]model.DayAggregate, error) {
	if days <= 0 {
		days = 1
	}
	since := h.now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	var rows []dayRow
	res := h.db.WithContext(ctx).
		Model(&model.CheckResult{}).
		Select(`date_trunc('day', checked_at AT TIME ZONE 'UTC') AS day,
			COUNT(*) FILTER (WHERE online) AS online_count,
			COUNT(*) AS total_count,
			COALESCE(AVG(response_ms), 0) AS avg_response_ms`).
		Where("monitor_id = ? AND checked_at >= ?", monitorID, since).
		Group("day").
		Order("day ASC").
		Scan(&rows)
	if res.Error != nil {
		return nil, fmt.Errorf("HistoryRepository.QueryByDay: %w", res.Error)
	}

	byDay := make(map[string]dayRow, len(rows))
	for _, r := range rows {
		byDay[r.Day.UTC().Format("2006-01-02")] = r
	}

	out := make([]model.DayAggregate, 0, days)
	for i := 0; i < days; i++ {
		day := since.AddDate(0, 0, i)
		agg := model.DayAggregate{MonitorID: monitorID, Day: day}
		if r, ok := byDay[day.Format("2006-01-02")]; ok {
			agg.OnlineCount = r.OnlineCount
			agg.TotalCount = r.TotalCount
			agg.AvgResponseMs = r.AvgResponseMs
		}
		out = append(out, agg)
	}
	return out, nil
}

func (h *historyRepository) LatestByMonitor(ctx context.Context, monitorID int) (model.CheckResult, error) {
	var result model.CheckResult
	res := h.db.WithContext(ctx).
		Where("monitor_id = ?", monitorID).
		Order("checked_at DESC").
		First(&result)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("HistoryRepository.LatestByMonitor: %w", apperrors.ErrMonitorNotFound)
		}
		return result, fmt.Errorf("HistoryRepository.LatestByMonitor: %w", res.Error)
	}
	return result, nil
}

// Prune deletes results older than the retention cutoff. The delete runs in
// its own transaction; concurrent aggregate reads see either the old or the
// new snapshot, never a torn one.
func (h *historyRepository) Prune(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := h.now().AddDate(0, 0, -retentionDays)
	res := h.db.WithContext(ctx).Where("checked_at < ?", cutoff).Delete(&model.CheckResult{})
	if res.Error != nil {
		return 0, fmt.Errorf("HistoryRepository.Prune: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{
		db:  db,
		now: time.Now,
	}
}
