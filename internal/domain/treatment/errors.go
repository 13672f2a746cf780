package treatment

import "errors"

var (
	ErrTreatmentNotFound = errors.New("treatment not found")
)
