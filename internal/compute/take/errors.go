package take

import "github.com/cockroachdb/errors"

// Errors returned by Take. Callers discriminate with errors.Is; none of
// these are retryable, since the kernel is deterministic.
var (
	// ErrUnsupportedType marks a source logical type with no gather
	// behavior. Distinct from data errors so callers can fall back to a
	// generic path.
	ErrUnsupportedType = errors.New("take: unsupported data type")

	// ErrIndexOverflow marks an index or dictionary key that is negative
	// or does not fit a memory offset. Truncating instead would address
	// unrelated memory across row boundaries.
	ErrIndexOverflow = errors.New("take: index overflows memory offset")

	// ErrOffsetOverflow marks a variable-length result whose accumulated
	// byte length exceeds the range of the source's offset width.
	ErrOffsetOverflow = errors.New("take: accumulated offsets overflow offset width")
)
