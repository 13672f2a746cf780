package treatment

import "context"

// Repository is a read-only projection of the slot catalog. Catalog edits are
// an administrative concern outside the booking cycle.
type Repository interface {
	// List returns every treatment in catalog order (by name).
	List(ctx context.Context) ([]*Treatment, error)

	// GetByName retrieves a treatment by its unique display name.
	// Returns ErrTreatmentNotFound if absent.
	GetByName(ctx context.Context, name string) (*Treatment, error)

	// ListNames returns the name-only projection used by booking pickers.
	ListNames(ctx context.Context) ([]*NameProjection, error)
}
