package take

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/harshithgowdakt/colvec/internal/types"
)

// asIndex converts a raw index or dictionary key value into a non-negative
// buffer position. Negative values and values beyond the platform word are
// rejected rather than wrapped.
func asIndex[O types.Offset](v O) (int, error) {
	if v < 0 || uint64(v) > uint64(math.MaxInt) {
		return 0, errors.Wrapf(ErrIndexOverflow, "value %d", int64(v))
	}
	return int(v), nil
}

// maxOffset returns the largest value representable in offset width O.
func maxOffset[O types.Offset]() int64 {
	switch any(O(0)).(type) {
	case int32:
		return math.MaxInt32
	default:
		return math.MaxInt64
	}
}
