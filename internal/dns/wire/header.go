// Package wire implements the RFC 1035 DNS message wire format: the fixed
// header, length-prefixed names with compression pointers, question and
// resource record sections, and whole-message assembly. Every decode
// operation returns a specific error kind on malformed input; nothing is
// silently substituted or truncated.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

const (
	// HeaderLen is the fixed size of a DNS message header.
	HeaderLen = 12

	// MaxUDPPayload is the classic UDP DNS payload ceiling. Receive
	// buffers are sized to it; larger replies are truncated by the
	// transport itself.
	MaxUDPPayload = 512
)

// DecodeHeader reads the six big-endian 16-bit header fields from the
// first 12 bytes of buf.
func DecodeHeader(buf []byte) (domain.Header, error) {
	if len(buf) < HeaderLen {
		return domain.Header{}, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedHeader, HeaderLen, len(buf))
	}
	return domain.Header{
		ID:              binary.BigEndian.Uint16(buf[0:2]),
		Flags:           binary.BigEndian.Uint16(buf[2:4]),
		QuestionCount:   binary.BigEndian.Uint16(buf[4:6]),
		AnswerCount:     binary.BigEndian.Uint16(buf[6:8]),
		AuthorityCount:  binary.BigEndian.Uint16(buf[8:10]),
		AdditionalCount: binary.BigEndian.Uint16(buf[10:12]),
	}, nil
}

// EncodeHeader serializes a header into its fixed 12-byte wire form.
func EncodeHeader(h domain.Header) []byte {
	buf := make([]byte, HeaderLen)
	binary.BigEndian.PutUint16(buf[0:2], h.ID)
	binary.BigEndian.PutUint16(buf[2:4], h.Flags)
	binary.BigEndian.PutUint16(buf[4:6], h.QuestionCount)
	binary.BigEndian.PutUint16(buf[6:8], h.AnswerCount)
	binary.BigEndian.PutUint16(buf[8:10], h.AuthorityCount)
	binary.BigEndian.PutUint16(buf[10:12], h.AdditionalCount)
	return buf
}
