package wizard

import "context"

// Repository is the persisted interview-ID → Document mapping.
type Repository interface {
	// GetForInterview returns the stored document for the interview. When the
	// mapping does not exist yet it is initialized with the fallback; when it
	// exists but lacks the key, or cannot be parsed, the fallback is returned
	// without touching the store.
	GetForInterview(ctx context.Context, interviewID string, fallback Document) (Document, error)
	// Save writes the document under its interview ID, overwriting whatever
	// was there. The whole mapping is rewritten; concurrent writers race and
	// the later write wins in full.
	Save(ctx context.Context, doc Document) error
}

type SavedEvent struct {
	Result Document
}
