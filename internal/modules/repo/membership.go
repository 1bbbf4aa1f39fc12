package repo

import (
	"context"
	"errors"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepo backs the two authorization predicates and the invite
// write path. Racing duplicate inserts lose on the (project_id, user_id)
// primary key and surface as Conflict.
type MembershipRepo interface {
	IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	IsAdmin(ctx context.Context, projectID, userID uuid.UUID) (bool, error)
	Create(ctx context.Context, m *model.Membership) error
}

type membershipRepo struct{ db *gorm.DB }

func NewMembershipRepo(db *gorm.DB) MembershipRepo {
	return &membershipRepo{db: db}
}

func (r *membershipRepo) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepo) IsAdmin(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Membership{}).
		Where("project_id = ? AND user_id = ? AND is_admin = ?", projectID, userID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *membershipRepo) Create(ctx context.Context, m *model.Membership) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Conflict("user is already in this project")
		}
		return err
	}
	return nil
}
