// Package rrdata renders RDATA payloads for logging. The wire layer treats
// RDATA as opaque bytes; interpretation as text happens only here, at the
// presentation boundary.
package rrdata

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

// Present returns a human-readable rendering of an RDATA payload for the
// given record type. Unknown or malformed payloads fall back to hex; this
// function never fails, since it only feeds log output.
func Present(t domain.RRType, data []byte) string {
	switch t {
	case domain.RRTypeA:
		if len(data) == 4 {
			return net.IP(data).String()
		}
	case domain.RRTypeAAAA:
		if len(data) == 16 {
			return net.IP(data).String()
		}
	case domain.RRTypeNS, domain.RRTypeCNAME, domain.RRTypePTR:
		if name, ok := flatName(data); ok {
			return name
		}
	case domain.RRTypeMX:
		if len(data) > 2 {
			if name, ok := flatName(data[2:]); ok {
				pref := binary.BigEndian.Uint16(data[0:2])
				return fmt.Sprintf("%d %s", pref, name)
			}
		}
	case domain.RRTypeTXT:
		if strs, ok := characterStrings(data); ok {
			return strings.Join(strs, " ")
		}
	}
	return hex.EncodeToString(data)
}

// flatName decodes an uncompressed domain name occupying the whole slice.
// RDATA-embedded names from upstreams may carry compression pointers into
// the enclosing message; those cannot be resolved here and render as hex.
func flatName(b []byte) (string, bool) {
	var labels []string
	i := 0
	for i < len(b) {
		l := int(b[i])
		if l == 0 {
			if len(labels) == 0 {
				return ".", true
			}
			return strings.Join(labels, "."), true
		}
		if l&0xC0 != 0 {
			return "", false
		}
		i++
		if i+l > len(b) {
			return "", false
		}
		labels = append(labels, string(b[i:i+l]))
		i += l
	}
	return "", false
}

// characterStrings splits TXT RDATA into its length-prefixed strings,
// quoting each for safe log output.
func characterStrings(b []byte) ([]string, bool) {
	var out []string
	i := 0
	for i < len(b) {
		l := int(b[i])
		i++
		if i+l > len(b) {
			return nil, false
		}
		out = append(out, strconv.Quote(string(b[i:i+l])))
		i += l
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
