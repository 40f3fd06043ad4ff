package storage

import "errors"

// Logical keys for the two persisted collections.
const (
	MealsKey       = "meals"
	AssignmentsKey = "mealAssignments"
)

var (
	ErrEncode = errors.New("storage: encode failed")
	ErrDecode = errors.New("storage: decode failed")
)

// Store persists one serialized collection per logical key. Fetch on an
// absent key reports found=false with no error; decode problems surface
// as ErrDecode so repositories can propagate them verbatim.
type Store interface {
	Save(key string, value any) error
	Fetch(key string, dest any) (found bool, err error)
}
