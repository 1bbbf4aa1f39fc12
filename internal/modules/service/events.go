package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventPublisher is satisfied by queue.Publisher. A nil publisher
// disables events.
type EventPublisher interface {
	PublishJSON(ctx context.Context, v any) error
}

const (
	EventProjectCreated   = "project.created"
	EventProjectDeleted   = "project.deleted"
	EventMemberInvited    = "member.invited"
	EventDocumentUploaded = "document.uploaded"
	EventDocumentDeleted  = "document.deleted"
)

// Event is published after the mutation it describes has committed.
// BlobKeys on project.deleted names the orphaned objects so an out-of-band
// consumer can clean them up.
type Event struct {
	Type       string     `json:"type"`
	ProjectID  uuid.UUID  `json:"project_id"`
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	BlobKeys   []string   `json:"blob_keys,omitempty"`
	At         time.Time  `json:"at"`
}
