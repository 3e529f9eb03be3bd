// Package domain holds the wire-independent DNS message model: header,
// flags, questions, and resource records as plain values. Byte-level
// encoding and decoding lives in internal/dns/wire.
package domain

// Header represents the fixed 12-byte DNS message header (RFC 1035 §4.1.1).
// Values are never mutated after construction; derived headers (responses,
// upstream queries) are built as fresh instances.
type Header struct {
	ID              uint16 // transaction ID, echoed verbatim in responses
	Flags           uint16 // bit-packed control/status bits, see Flags
	QuestionCount   uint16
	AnswerCount     uint16
	AuthorityCount  uint16
	AdditionalCount uint16
}

// Flags is the decoded view of Header.Flags.
//
// Bit layout, MSB to LSB: QR(1) OPCODE(4) AA(1) TC(1) RD(1) RA(1) Z(3) RCODE(4).
type Flags struct {
	QR     bool  // false = query, true = response
	Opcode uint8 // 4 bits; 0 = standard query
	AA     bool  // authoritative answer
	TC     bool  // truncated
	RD     bool  // recursion desired
	RA     bool  // recursion available
	Z      uint8 // 3 reserved bits, must be zero on encode
	RCode  uint8 // 4 bits; 0 = no error, 4 = not implemented
}

// UnpackFlags decodes a raw 16-bit flags field into its component bits.
// Reserved bits are preserved so that Pack(UnpackFlags(v)) == v for any v.
func UnpackFlags(v uint16) Flags {
	return Flags{
		QR:     v&(1<<15) != 0,
		Opcode: uint8((v >> 11) & 0xF),
		AA:     v&(1<<10) != 0,
		TC:     v&(1<<9) != 0,
		RD:     v&(1<<8) != 0,
		RA:     v&(1<<7) != 0,
		Z:      uint8((v >> 4) & 0x7),
		RCode:  uint8(v & 0xF),
	}
}

// Pack encodes the flags back into the raw 16-bit wire representation.
func (f Flags) Pack() uint16 {
	var v uint16
	if f.QR {
		v |= 1 << 15
	}
	v |= uint16(f.Opcode&0xF) << 11
	if f.AA {
		v |= 1 << 10
	}
	if f.TC {
		v |= 1 << 9
	}
	if f.RD {
		v |= 1 << 8
	}
	if f.RA {
		v |= 1 << 7
	}
	v |= uint16(f.Z&0x7) << 4
	v |= uint16(f.RCode & 0xF)
	return v
}
