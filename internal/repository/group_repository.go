package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"

	"gorm.io/gorm"
)

type GroupRepository interface {
	CreateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error)
	ListGroups(ctx context.Context) ([]model.MonitorGroup, error)
	UpdateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error)
	DeleteGroupByID(ctx context.Context, groupID int) error
}

type groupRepository struct {
	db *gorm.DB
}

func (g *groupRepository) CreateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error) {
	res := g.db.WithContext(ctx).Create(&group)
	if res.Error != nil {
		return group, fmt.Errorf("GroupRepository.CreateGroup: %w", res.Error)
	}
	return group, nil
}

func (g *groupRepository) ListGroups(ctx context.Context) ([]model.MonitorGroup, error) {
	var groups []model.MonitorGroup
	res := g.db.WithContext(ctx).Order("id").Find(&groups)
	if res.Error != nil {
		return nil, fmt.Errorf("GroupRepository.ListGroups: %w", res.Error)
	}
	return groups, nil
}

func (g *groupRepository) UpdateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error) {
	res := g.db.WithContext(ctx).Model(&model.MonitorGroup{}).Where("id = ?", group.ID).Updates(map[string]interface{}{
		"name":  group.Name,
		"icon":  group.Icon,
		"color": group.Color,
	})
	if res.Error != nil {
		return group, fmt.Errorf("GroupRepository.UpdateGroup: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return group, fmt.Errorf("GroupRepository.UpdateGroup: %w", apperrors.ErrGroupNotFound)
	}
	return group, nil
}

// DeleteGroupByID clears the weak references first: monitors survive their
// group.
func (g *groupRepository) DeleteGroupByID(ctx context.Context, groupID int) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if res := tx.Model(&model.Monitor{}).Where("group_id = ?", groupID).Update("group_id", gorm.Expr("NULL")); res.Error != nil {
			return res.Error
		}
		res := tx.Where("id = ?", groupID).Delete(&model.MonitorGroup{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrGroupNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrGroupNotFound) {
			return fmt.Errorf("GroupRepository.DeleteGroupByID: %w", apperrors.ErrGroupNotFound)
		}
		return fmt.Errorf("GroupRepository.DeleteGroupByID: %w", err)
	}
	return nil
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{
		db: db,
	}
}
