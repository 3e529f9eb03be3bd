package rrdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

func TestPresent(t *testing.T) {
	tests := []struct {
		name string
		typ  domain.RRType
		data []byte
		want string
	}{
		{
			name: "A record",
			typ:  domain.RRTypeA,
			data: []byte{93, 184, 216, 34},
			want: "93.184.216.34",
		},
		{
			name: "A record with wrong length falls back to hex",
			typ:  domain.RRTypeA,
			data: []byte{1, 2, 3},
			want: "010203",
		},
		{
			name: "AAAA record",
			typ:  domain.RRTypeAAAA,
			data: []byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
			want: "2001:db8::1",
		},
		{
			name: "CNAME",
			typ:  domain.RRTypeCNAME,
			data: []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
			want: "www.example.com",
		},
		{
			name: "NS root",
			typ:  domain.RRTypeNS,
			data: []byte{0},
			want: ".",
		},
		{
			name: "compressed name falls back to hex",
			typ:  domain.RRTypeCNAME,
			data: []byte{0xC0, 0x0C},
			want: "c00c",
		},
		{
			name: "MX",
			typ:  domain.RRTypeMX,
			data: []byte{0, 10, 4, 'm', 'a', 'i', 'l', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
			want: "10 mail.example.com",
		},
		{
			name: "TXT single string",
			typ:  domain.RRTypeTXT,
			data: []byte{5, 'h', 'e', 'l', 'l', 'o'},
			want: `"hello"`,
		},
		{
			name: "TXT multiple strings",
			typ:  domain.RRTypeTXT,
			data: []byte{1, 'a', 2, 'b', 'c'},
			want: `"a" "bc"`,
		},
		{
			name: "TXT truncated falls back to hex",
			typ:  domain.RRTypeTXT,
			data: []byte{9, 'x'},
			want: "0978",
		},
		{
			name: "unknown type is hex",
			typ:  domain.RRType(4242),
			data: []byte{0xDE, 0xAD, 0xBE, 0xEF},
			want: "deadbeef",
		},
		{
			name: "empty payload",
			typ:  domain.RRTypeA,
			data: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Present(tt.typ, tt.data))
		})
	}
}
