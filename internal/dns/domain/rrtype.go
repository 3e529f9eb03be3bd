package domain

import "fmt"

// RRType represents a DNS resource record type code (e.g. A, AAAA, MX).
// The named constants are advisory: decoding never rejects a code that has
// no symbolic name here.
type RRType uint16

// DNS Resource Record Type constants
const (
	RRTypeA     RRType = 1  // A - IPv4 address
	RRTypeNS    RRType = 2  // NS - Name server
	RRTypeCNAME RRType = 5  // CNAME - Canonical name
	RRTypeSOA   RRType = 6  // SOA - Start of authority
	RRTypePTR   RRType = 12 // PTR - Pointer
	RRTypeMX    RRType = 15 // MX - Mail exchange
	RRTypeTXT   RRType = 16 // TXT - Text
	RRTypeAAAA  RRType = 28 // AAAA - IPv6 address
	RRTypeOPT   RRType = 41 // OPT - EDNS option
)

// IsValid returns true if the RRType is one of the named types.
func (t RRType) IsValid() bool {
	switch t {
	case RRTypeA, RRTypeNS, RRTypeCNAME, RRTypeSOA, RRTypePTR, RRTypeMX,
		RRTypeTXT, RRTypeAAAA, RRTypeOPT:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRType.
// For unnamed codes it returns "TYPE<value>" (RFC 3597 style).
func (t RRType) String() string {
	switch t {
	case RRTypeA:
		return "A"
	case RRTypeNS:
		return "NS"
	case RRTypeCNAME:
		return "CNAME"
	case RRTypeSOA:
		return "SOA"
	case RRTypePTR:
		return "PTR"
	case RRTypeMX:
		return "MX"
	case RRTypeTXT:
		return "TXT"
	case RRTypeAAAA:
		return "AAAA"
	case RRTypeOPT:
		return "OPT"
	default:
		return fmt.Sprintf("TYPE%d", uint16(t))
	}
}
