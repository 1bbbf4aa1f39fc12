package service

import (
	"context"
	"time"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/repo"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MembershipService interface {
	// Invite adds the user behind targetEmail as a non-admin member.
	// Admin-only; NotFound for unknown emails, Conflict for existing members.
	Invite(ctx context.Context, projectID, inviterID uuid.UUID, targetEmail string) error
}

type membershipService struct {
	members repo.MembershipRepo
	users   repo.UserRepo
	guard   guard
	events  EventPublisher
	log     *zap.Logger
}

func NewMembershipService(members repo.MembershipRepo, users repo.UserRepo, events EventPublisher, log *zap.Logger) MembershipService {
	return &membershipService{
		members: members,
		users:   users,
		guard:   newGuard(members),
		events:  events,
		log:     log,
	}
}

func (s *membershipService) Invite(ctx context.Context, projectID, inviterID uuid.UUID, targetEmail string) error {
	if err := s.guard.requireAdmin(ctx, projectID, inviterID); err != nil {
		return err
	}

	target, err := s.users.GetByEmail(ctx, targetEmail)
	if err != nil {
		return err
	}

	member, err := s.members.IsMember(ctx, projectID, target.ID)
	if err != nil {
		return err
	}
	if member {
		return apperr.Conflict("user is already in this project")
	}

	// A racing duplicate insert loses on the composite primary key and comes
	// back as Conflict from the repo.
	if err := s.members.Create(ctx, &model.Membership{
		ProjectID: projectID,
		UserID:    target.ID,
		IsAdmin:   false,
	}); err != nil {
		return err
	}

	if s.events != nil {
		ev := Event{
			Type:      EventMemberInvited,
			ProjectID: projectID,
			UserID:    &target.ID,
			At:        time.Now().UTC(),
		}
		if err := s.events.PublishJSON(ctx, ev); err != nil {
			s.log.Sugar().Warnw("publish event failed", "type", ev.Type, "err", err)
		}
	}
	return nil
}
