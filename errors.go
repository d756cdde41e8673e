package tnetstr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSerializable reports an encode-time value that maps onto none of
	// the seven wire tags. Returned wrapped with type context.
	ErrNotSerializable = errors.New("tnetstr: value not serializable")

	// ErrTooDeep reports list/dict nesting beyond the coder's MaxDepth.
	ErrTooDeep = errors.New("tnetstr: nesting too deep")
)

// SyntaxError reports malformed wire data: a bad length prefix, a missing or
// unknown tag byte, a truncated buffer, or a bad bool/null literal. Offset is
// the byte position in the decoded input where the problem was detected.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("tnetstr: not a tnetstring: %s (offset %d)", e.Msg, e.Offset)
}

// NumberError reports an integer or float payload the numeric policy
// rejected: bad characters, an empty literal, or text the underlying parser
// did not fully consume.
type NumberError struct {
	Literal string
	Msg     string
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("tnetstr: invalid numeric literal %q: %s", e.Literal, e.Msg)
}
