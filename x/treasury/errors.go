package treasury

import (
	"github.com/iov-one/weave/errors"
)

// Error codes
// x/treasury reserves 1200 ~ 1209.

var (
	// ErrNoDistributor is returned when a fee collection is attempted by
	// an account that is not registered as an active fee distributor.
	ErrNoDistributor = errors.Register(1200, "no active distributor")

	// ErrBatchCapacity is returned when a distribution would produce more
	// batch entries than a single batch can hold.
	ErrBatchCapacity = errors.Register(1201, "batch capacity exceeded")
)
