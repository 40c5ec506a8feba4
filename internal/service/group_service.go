package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sitepulse/sitepulse/internal/apperrors"
	"github.com/sitepulse/sitepulse/internal/model"
	"github.com/sitepulse/sitepulse/internal/repository"
)

type GroupService interface {
	CreateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error)
	ListGroups(ctx context.Context) ([]model.MonitorGroup, error)
	UpdateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error)
	DeleteGroup(ctx context.Context, groupID int) error
}

type groupService struct {
	groupRepository repository.GroupRepository
}

func (g *groupService) CreateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error) {
	if strings.TrimSpace(group.Name) == "" {
		return group, fmt.Errorf("GroupService.CreateGroup: %w: name is required", apperrors.ErrInvalidMonitorConfig)
	}
	created, err := g.groupRepository.CreateGroup(ctx, group)
	if err != nil {
		return created, fmt.Errorf("GroupService.CreateGroup: %w", err)
	}
	return created, nil
}

func (g *groupService) ListGroups(ctx context.Context) ([]model.MonitorGroup, error) {
	groups, err := g.groupRepository.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("GroupService.ListGroups: %w", err)
	}
	return groups, nil
}

func (g *groupService) UpdateGroup(ctx context.Context, group model.MonitorGroup) (model.MonitorGroup, error) {
	if strings.TrimSpace(group.Name) == "" {
		return group, fmt.Errorf("GroupService.UpdateGroup: %w: name is required", apperrors.ErrInvalidMonitorConfig)
	}
	updated, err := g.groupRepository.UpdateGroup(ctx, group)
	if err != nil {
		return updated, fmt.Errorf("GroupService.UpdateGroup: %w", err)
	}
	return updated, nil
}

func (g *groupService) DeleteGroup(ctx context.Context, groupID int) error {
	if err := g.groupRepository.DeleteGroupByID(ctx, groupID); err != nil {
		return fmt.Errorf("GroupService.DeleteGroup: %w", err)
	}
	return nil
}

func NewGroupService(groupRepository repository.GroupRepository) GroupService {
	return &groupService{
		groupRepository: groupRepository,
	}
}
