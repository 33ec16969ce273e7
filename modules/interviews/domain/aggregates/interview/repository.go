package interview

import "context"

// FindParams filters the denormalized list. Empty Status/Type/Q mean
// "match everything" for that dimension. Q is matched case-insensitively as a
// substring of the collaborator full name, the collaborator email and the
// manager full name.
type FindParams struct {
	Status Status
	Type   Type
	Q      string
}

// Repository is the seed-then-diverge record collection. All reads go through
// the persisted copy; the seed list only materializes on first access.
type Repository interface {
	// All returns the persisted collection, seeding it first if the store
	// holds nothing usable.
	All(ctx context.Context) ([]WithDetails, error)
	// Save overwrites the whole persisted collection.
	Save(ctx context.Context, list []WithDetails) error
	// Upsert replaces the record with a matching ID or appends it, then
	// persists and returns the new collection.
	Upsert(ctx context.Context, record WithDetails) ([]WithDetails, error)
	// UpdateStatus merges the patch and sets the status on the identified
	// record. An unknown ID is a no-op returning the unmodified collection.
	UpdateStatus(ctx context.Context, id string, status Status, patch StatusPatch) ([]WithDetails, error)
	GetByID(ctx context.Context, id string) (WithDetails, error)
}
