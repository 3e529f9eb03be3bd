package wire

import "errors"

// Error kinds reported by the codec. Callers match them with errors.Is;
// decode paths wrap them with positional context via fmt.Errorf and %w.
var (
	// ErrTruncatedHeader means the buffer is shorter than the fixed
	// 12-byte message header.
	ErrTruncatedHeader = errors.New("truncated header")

	// ErrOffsetOutOfBounds means a name or record cursor walked past the
	// end of the buffer.
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")

	// ErrTruncatedName means a label or compression pointer extends
	// beyond the buffer.
	ErrTruncatedName = errors.New("truncated name")

	// ErrCompressionLoop means the pointer-jump budget was exceeded
	// while following compression pointers.
	ErrCompressionLoop = errors.New("compression pointer loop")

	// ErrLabelTooLong means a label exceeds the 63-byte wire limit at
	// encode time.
	ErrLabelTooLong = errors.New("label exceeds 63 bytes")

	// ErrTruncatedQuestion means fewer than 4 bytes remain after a
	// question name for its type and class.
	ErrTruncatedQuestion = errors.New("truncated question")

	// ErrTruncatedRecord means fewer than 10 bytes remain after a record
	// name for its fixed fields.
	ErrTruncatedRecord = errors.New("truncated record fields")

	// ErrTruncatedRData means the declared RDLENGTH extends beyond the
	// buffer.
	ErrTruncatedRData = errors.New("truncated rdata")
)
