package doctor

import "context"

type Repository interface {
	// Create returns ErrDoctorAlreadyExists on a duplicate email.
	Create(ctx context.Context, d *Doctor) error

	List(ctx context.Context) ([]*Doctor, error)

	// DeleteByEmail returns ErrDoctorNotFound if no roster entry matches.
	DeleteByEmail(ctx context.Context, email string) error
}
