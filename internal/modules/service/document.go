package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/docvault-io/docvault/internal/modules/model"
	"github.com/docvault-io/docvault/internal/modules/repo"
	"github.com/docvault-io/docvault/internal/pkg/apperr"
	"github.com/docvault-io/docvault/internal/pkg/doctype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BlobStore is satisfied by blob.S3Deps. Keys are opaque to everyone but
// the blob layer.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Delete(ctx context.Context, key string) error
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}

type DocumentService interface {
	Upload(ctx context.Context, in UploadDocumentInput) (*model.Document, error)
	Get(ctx context.Context, documentID, requesterID uuid.UUID) (*model.Document, error)
	List(ctx context.Context, projectID, requesterID uuid.UUID) ([]model.Document, error)
	Rename(ctx context.Context, documentID, requesterID uuid.UUID, newTitle string) (*model.Document, error)
	Delete(ctx context.Context, documentID, requesterID uuid.UUID) error
	DownloadURL(ctx context.Context, documentID, requesterID uuid.UUID) (string, error)
}

type UploadDocumentInput struct {
	ProjectID  uuid.UUID
	UploaderID uuid.UUID
	Filename   string
	Title      string
	Data       []byte
}

type documentService struct {
	docs          repo.DocumentRepo
	guard         guard
	blob          BlobStore
	events        EventPublisher
	presignExpire func() time.Duration
	log           *zap.Logger
}

func NewDocumentService(
	docs repo.DocumentRepo,
	members repo.MembershipRepo,
	blob BlobStore,
	events EventPublisher,
	presignExpire func() time.Duration,
	log *zap.Logger,
) DocumentService {
	return &documentService{
		docs:          docs,
		guard:         newGuard(members),
		blob:          blob,
		events:        events,
		presignExpire: presignExpire,
		log:           log,
	}
}

// Upload validates the file type, writes the blob and only then inserts the
// index row. A failed storage write leaves no partial state behind.
func (s *documentService) Upload(ctx context.Context, in UploadDocumentInput) (*model.Document, error) {
	if err := s.guard.requireMember(ctx, in.ProjectID, in.UploaderID); err != nil {
		return nil, err
	}

	contentType, err := doctype.Detect(in.Filename, in.Data)
	if err != nil {
		return nil, err
	}

	key := blobKey(in.ProjectID, in.Filename)
	if err := s.blob.Put(ctx, key, contentType, in.Data); err != nil {
		return nil, fmt.Errorf("write blob: %w", err)
	}

	title := in.Title
	if title == "" {
		title = in.Filename
	}
	doc := &model.Document{
		ProjectID:   in.ProjectID,
		Title:       title,
		FilePath:    key,
		ContentType: contentType,
		SizeB:       int64(len(in.Data)),
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document record: %w", err)
	}

	s.publish(ctx, Event{
		Type:       EventDocumentUploaded,
		ProjectID:  in.ProjectID,
		DocumentID: &doc.ID,
		UserID:     &in.UploaderID,
		At:         time.Now().UTC(),
	})
	return doc, nil
}

func (s *documentService) Get(ctx context.Context, documentID, requesterID uuid.UUID) (*model.Document, error) {
	return s.resolveForMember(ctx, documentID, requesterID)
}

func (s *documentService) List(ctx context.Context, projectID, requesterID uuid.UUID) ([]model.Document, error) {
	if err := s.guard.requireMember(ctx, projectID, requesterID); err != nil {
		return nil, err
	}
	return s.docs.ListByProject(ctx, projectID)
}

func (s *documentService) Rename(ctx context.Context, documentID, requesterID uuid.UUID, newTitle string) (*model.Document, error) {
	if strings.TrimSpace(newTitle) == "" {
		return nil, apperr.InvalidInput("title is required")
	}
	doc, err := s.resolveForMember(ctx, documentID, requesterID)
	if err != nil {
		return nil, err
	}
	if err := s.docs.UpdateTitle(ctx, documentID, newTitle); err != nil {
		return nil, err
	}
	doc.Title = newTitle
	return doc, nil
}

// Delete removes the blob first; the index row only goes once storage has
// confirmed, so a failed blob delete never strands a dangling row.
func (s *documentService) Delete(ctx context.Context, documentID, requesterID uuid.UUID) error {
	doc, err := s.resolveForMember(ctx, documentID, requesterID)
	if err != nil {
		return err
	}

	if err := s.blob.Delete(ctx, doc.FilePath); err != nil {
		return fmt.Errorf("delete blob: %w", err)
	}
	if err := s.docs.Delete(ctx, documentID); err != nil {
		return err
	}

	s.publish(ctx, Event{
		Type:       EventDocumentDeleted,
		ProjectID:  doc.ProjectID,
		DocumentID: &documentID,
		UserID:     &requesterID,
		At:         time.Now().UTC(),
	})
	return nil
}

func (s *documentService) DownloadURL(ctx context.Context, documentID, requesterID uuid.UUID) (string, error) {
	doc, err := s.resolveForMember(ctx, documentID, requesterID)
	if err != nil {
		return "", err
	}
	return s.blob.PresignGet(ctx, doc.FilePath, s.presignExpire())
}

// resolveForMember fetches the document and re-derives its project for the
// membership check. Both failure modes answer the same way so callers
// cannot distinguish a missing document from one they cannot see.
func (s *documentService) resolveForMember(ctx context.Context, documentID, requesterID uuid.UUID) (*model.Document, error) {
	doc, err := s.docs.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.requireMember(ctx, doc.ProjectID, requesterID); err != nil {
		return nil, apperr.NotFoundf("document %s not found", documentID)
	}
	return doc, nil
}

func blobKey(projectID uuid.UUID, filename string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, filename)
	return fmt.Sprintf("projects/%s/%s_%s", projectID, uuid.NewString(), safe)
}

func (s *documentService) publish(ctx context.Context, ev Event) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishJSON(ctx, ev); err != nil {
		s.log.Sugar().Warnw("publish event failed", "type", ev.Type, "err", err)
	}
}
