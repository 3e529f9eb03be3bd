package wire

import (
	"bytes"
	"fmt"
	"strings"
)

// maxPointerJumps bounds compression pointer chains so that cyclic or
// self-referential pointers cannot loop forever.
const maxPointerJumps = 5

// DecodeName reads a domain name starting at offset: a run of
// length-prefixed labels terminated by a zero byte, or a compression
// pointer (top two bits 11) redirecting to an absolute offset in the same
// buffer. Pointers may point forward; only bounds are checked.
//
// The returned next offset is where parsing of the containing record
// resumes: two bytes past the first pointer encountered, or one past the
// terminator when no pointer was followed. Label bytes are copied verbatim
// into the dot-joined result; the root name decodes to ".".
func DecodeName(buf []byte, offset int) (string, int, error) {
	var labels []string
	jumped := false
	resume := offset
	jumps := 0

	for {
		if offset >= len(buf) {
			return "", 0, fmt.Errorf("%w: name at %d", ErrOffsetOutOfBounds, offset)
		}
		length := int(buf[offset])

		if length&0xC0 == 0xC0 {
			if offset+1 >= len(buf) {
				return "", 0, fmt.Errorf("%w: pointer at %d", ErrTruncatedName, offset)
			}
			ptr := int(length&0x3F)<<8 | int(buf[offset+1])
			if !jumped {
				resume = offset + 2
			}
			offset = ptr
			jumped = true
			jumps++
			if jumps > maxPointerJumps {
				return "", 0, fmt.Errorf("%w: more than %d jumps", ErrCompressionLoop, maxPointerJumps)
			}
			continue
		}

		offset++
		if length == 0 {
			break
		}
		if offset+length > len(buf) {
			return "", 0, fmt.Errorf("%w: label at %d", ErrTruncatedName, offset-1)
		}
		labels = append(labels, string(buf[offset:offset+length]))
		offset += length
	}

	if !jumped {
		resume = offset
	}
	if len(labels) == 0 {
		return ".", resume, nil
	}
	return strings.Join(labels, "."), resume, nil
}

// EncodeName serializes a dot-joined domain name into length-prefixed
// labels with a zero terminator. "." (the root) and "" both encode to a
// single zero byte. Names are always written in full; the encoder never
// emits compression pointers.
func EncodeName(name string) ([]byte, error) {
	var buf bytes.Buffer
	if name == "." || name == "" {
		buf.WriteByte(0)
		return buf.Bytes(), nil
	}
	for _, label := range strings.Split(name, ".") {
		if label == "" {
			continue
		}
		if len(label) > 63 {
			return nil, fmt.Errorf("%w: %q", ErrLabelTooLong, label)
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0)
	return buf.Bytes(), nil
}
