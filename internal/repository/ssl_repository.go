package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SSLRepository interface {
	Upsert(ctx context.Context, info model.SSLInfo) error
	GetByMonitorID(ctx context.Context, monitorID int) (model.SSLInfo, error)
}

type sslRepository struct {
	db *gorm.DB
}

func (s *sslRepository) Upsert(ctx context.Context, info model.SSLInfo) error {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "monitor_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"expires_at", "issuer", "days_left"}),
	}).Create(&info)
	if res.Error != nil {
		return fmt.Errorf("SSLRepository.Upsert: %w", res.Error)
	}
	return nil
}

func (s *sslRepository) GetByMonitorID(ctx context.Context, monitorID int) (model.SSLInfo, error) {
	var info model.SSLInfo
	res := s.db.WithContext(ctx).First(&info, "monitor_id = ?", monitorID)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return info, fmt.Errorf("SSLRepository.GetByMonitorID: %w", apperrors.ErrSSLInfoNotFound)
		}
		return info, fmt.Errorf("SSLRepository.GetByMonitorID: %w", res.Error)
	}
	return info, nil
}

func NewSSLRepository(db *gorm.DB) SSLRepository {
	return &sslRepository{
		db: db,
	}
}
