package amortization

import "errors"

// ErrInvalidArgument is returned, wrapped, for non-finite or out-of-domain
// inputs. No partial result accompanies it.
var ErrInvalidArgument = errors.New("invalid argument")
