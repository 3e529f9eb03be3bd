package domain

import "fmt"

// RRClass represents a DNS class code (usually IN for Internet).
// Like RRType, the named constants are advisory, not a parsing filter.
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN RRClass = 1 // IN - Internet
	RRClassCS RRClass = 2 // CS - CSNET (obsolete)
	RRClassCH RRClass = 3 // CH - Chaos
	RRClassHS RRClass = 4 // HS - Hesiod
)

// IsValid returns true if the RRClass is one of the named classes.
func (c RRClass) IsValid() bool {
	switch c {
	case RRClassIN, RRClassCS, RRClassCH, RRClassHS:
		return true
	default:
		return false
	}
}

// String returns the textual representation of the RRClass.
// For unnamed codes it returns "CLASS<value>" (RFC 3597 style).
func (c RRClass) String() string {
	switch c {
	case RRClassIN:
		return "IN"
	case RRClassCS:
		return "CS"
	case RRClassCH:
		return "CH"
	case RRClassHS:
		return "HS"
	default:
		return fmt.Sprintf("CLASS%d", uint16(c))
	}
}
