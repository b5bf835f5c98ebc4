package mutate

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrLastProfile is returned when deleting the sole remaining profile.
var ErrLastProfile = errors.New("cannot delete the last profile")

// ErrNoProfile is returned when the DB holds no profiles at all. It cannot
// happen for stores that went through Initialize.
var ErrNoProfile = errors.New("no active profile")
