package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	// CreateWithAdmin inserts the project and the creator's admin membership
	// in one transaction; neither persists without the other.
	CreateWithAdmin(ctx context.Context, p *model.Project, creatorID uuid.UUID) error
	// GetForUser resolves the project only through a membership join, so a
	// non-member cannot tell an inaccessible project from a missing one.
	GetForUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	UpdateFields(ctx context.Context, projectID uuid.UUID, fields map[string]any) error
	// DeleteCascade removes memberships, document rows and the project row in
	// one transaction and returns the orphaned blob keys.
	DeleteCascade(ctx context.Context, projectID uuid.UUID) ([]string, error)
}

type projectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db: db}
}

func (r *projectRepo) CreateWithAdmin(ctx context.Context, p *model.Project, creatorID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return fmt.Errorf("create project: %w", err)
		}
		m := &model.Membership{
			ProjectID: p.ID,
			UserID:    creatorID,
			IsAdmin:   true,
		}
		if err := tx.Create(m).Error; err != nil {
			return fmt.Errorf("create admin membership: %w", err)
		}
		return nil
	})
}

func (r *projectRepo) GetForUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error) {
	var p model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.project_id = projects.id").
		Where("projects.id = ? AND memberships.user_id = ?", projectID, userID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("project %s not found", projectID)
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Joins("JOIN memberships ON memberships.project_id = projects.id").
		Where("memberships.user_id = ?", userID).
		Find(&projects).Error
	return projects, err
}

func (r *projectRepo) UpdateFields(ctx context.Context, projectID uuid.UUID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		Updates(fields).Error
}

func (r *projectRepo) DeleteCascade(ctx context.Context, projectID uuid.UUID) ([]string, error) {
	var keys []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docs []model.Document
		if err := tx.Where("project_id = ?", projectID).Find(&docs).Error; err != nil {
			return fmt.Errorf("query documents: %w", err)
		}
		for _, d := range docs {
			keys = append(keys, d.FilePath)
		}

		if err := tx.Where("project_id = ?", projectID).Delete(&model.Document{}).Error; err != nil {
			return fmt.Errorf("delete documents: %w", err)
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&model.Membership{}).Error; err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}

		res := tx.Where("id = ?", projectID).Delete(&model.Project{})
		if res.Error != nil {
			return fmt.Errorf("delete project: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.NotFoundf("project %s not found", projectID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}
