package service

import (
	"context"
	"fmt"
	"time"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProjectService interface {
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	GetForUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error)
	Update(ctx context.Context, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, projectID, userID uuid.UUID) error
}

type CreateProjectInput struct {
	Name        string
	Description string
	CreatorID   uuid.UUID
}

type UpdateProjectInput struct {
	ProjectID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description string
}

type projectService struct {
	projects repo.ProjectRepo
	guard    guard
	events   EventPublisher
	log      *zap.Logger
}

func NewProjectService(projects repo.ProjectRepo, members repo.MembershipRepo, events EventPublisher, log *zap.Logger) ProjectService {
	return &projectService{
		projects: projects,
		guard:    newGuard(members),
		events:   events,
		log:      log,
	}
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	p := &model.Project{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := s.projects.CreateWithAdmin(ctx, p, in.CreatorID); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.publish(ctx, Event{
		Type:      EventProjectCreated,
		ProjectID: p.ID,
		UserID:    &in.CreatorID,
		At:        time.Now().UTC(),
	})
	return p, nil
}

func (s *projectService) GetForUser(ctx context.Context, projectID, userID uuid.UUID) (*model.Project, error) {
	return s.projects.GetForUser(ctx, projectID, userID)
}

func (s *projectService) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Project, error) {
	return s.projects.ListForUser(ctx, userID)
}

// Update applies only non-empty fields; an empty incoming value leaves the
// stored field untouched.
func (s *projectService) Update(ctx context.Context, in UpdateProjectInput) (*model.Project, error) {
	if err := s.guard.requireMember(ctx, in.ProjectID, in.UserID); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if in.Name != "" {
		fields["name"] = in.Name
	}
	if in.Description != "" {
		fields["description"] = in.Description
	}
	if err := s.projects.UpdateFields(ctx, in.ProjectID, fields); err != nil {
		return nil, err
	}

	return s.projects.GetForUser(ctx, in.ProjectID, in.UserID)
}

func (s *projectService) Delete(ctx context.Context, projectID, userID uuid.UUID) error {
	if err := s.guard.requireAdmin(ctx, projectID, userID); err != nil {
		return err
	}

	keys, err := s.projects.DeleteCascade(ctx, projectID)
	if err != nil {
		return err
	}

	s.publish(ctx, Event{
		Type:      EventProjectDeleted,
		ProjectID: projectID,
		UserID:    &userID,
		BlobKeys:  keys,
		At:        time.Now().UTC(),
	})
	return nil
}

// publish is best-effort: the mutation has already committed, so a broker
// hiccup must not fail the request.
func (s *projectService) publish(ctx context.Context, ev Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, ev); err != nil {
		s.log.Sugar().Warnw("publish event failed", "type", ev.Type, "err", err)
	}
}
