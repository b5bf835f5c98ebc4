package cli

import "errors"

var errResetNeedsForce = errors.New("reset deletes all data; re-run with --force")
