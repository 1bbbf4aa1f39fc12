package service

import (
	"context"

	"github.com/docvault-io/docvault/internal/modules/repo"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/google/uuid"
)

// guard is the single authorization gate every project- and document-scoped
// operation goes through. Membership failures read as NotFound so callers
// cannot probe for project existence; admin failures by actual members read
// as Forbidden.
type guard struct {
	members repo.MembershipRepo
}

func newGuard(members repo.MembershipRepo) guard {
	return guard{members: members}
}

func (g guard) requireMember(ctx context.Context, projectID, userID uuid.UUID) error {
	ok, err := g.members.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFoundf("project %s not found", projectID)
	}
	return nil
}

func (g guard) requireAdmin(ctx context.Context, projectID, userID uuid.UUID) error {
	admin, err := g.members.IsAdmin(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if admin {
		return nil
	}
	member, err := g.members.IsMember(ctx, projectID, userID)
	if err != nil {
		return err
	}
	if member {
		return apperr.Forbidden("only the project admin can perform this action")
	}
	return apperr.NotFoundf("project %s not found", projectID)
}
