package repo

import (
	"context"
	"errors"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepo interface {
	Create(ctx context.Context, d *model.Document) error
	Get(ctx context.Context, id uuid.UUID) (*model.Document, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Document, error)
	UpdateTitle(ctx context.Context, id uuid.UUID, title string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type documentRepo struct{ db *gorm.DB }

func NewDocumentRepo(db *gorm.DB) DocumentRepo {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, d *model.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *documentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Document, error) {
	var d model.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("document %s not found", id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *documentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Document, error) {
	var docs []model.Document
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&docs).Error
	return docs, err
}

func (r *documentRepo) UpdateTitle(ctx context.Context, id uuid.UUID, title string) error {
	res := r.db.WithContext(ctx).Model(&model.Document{}).
		Where("id = ?", id).
		Update("title", title)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFoundf("document %s not found", id)
	}
	return nil
}

func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Document{}).Error
}
