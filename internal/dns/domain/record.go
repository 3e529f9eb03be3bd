package domain

import "fmt"

// ResourceRecord represents a DNS resource record as carried in the answer
// section of a message. Data is the opaque, type-dependent RDATA payload;
// its semantics are never interpreted here beyond length accounting.
type ResourceRecord struct {
	Name     string
	Type     RRType
	Class    RRClass
	TTL      uint32
	RDLength uint16
	Data     []byte
}

// NewResourceRecord constructs a ResourceRecord with RDLength derived from
// the payload, keeping the RDLength == len(Data) invariant by construction.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data []byte) (ResourceRecord, error) {
	if len(data) > 0xFFFF {
		return ResourceRecord{}, fmt.Errorf("rdata too large: %d bytes (max 65535)", len(data))
	}
	return ResourceRecord{
		Name:     name,
		Type:     rrtype,
		Class:    class,
		TTL:      ttl,
		RDLength: uint16(len(data)),
		Data:     data,
	}, nil
}

// NewARecord builds an A record answer from a raw IPv4 address.
func NewARecord(name string, ttl uint32, ip [4]byte) ResourceRecord {
	rr, _ := NewResourceRecord(name, RRTypeA, RRClassIN, ttl, ip[:])
	return rr
}

// NewAAAARecord builds an AAAA record answer from a raw IPv6 address.
func NewAAAARecord(name string, ttl uint32, ip [16]byte) ResourceRecord {
	rr, _ := NewResourceRecord(name, RRTypeAAAA, RRClassIN, ttl, ip[:])
	return rr
}

// Validate checks the structural invariant between the declared RDATA
// length and the payload. A mismatch only ever comes from a deliberately
// malformed producer and must be rejected, never silently truncated.
func (rr ResourceRecord) Validate() error {
	if int(rr.RDLength) != len(rr.Data) {
		return fmt.Errorf("rdlength %d does not match rdata length %d", rr.RDLength, len(rr.Data))
	}
	return nil
}
