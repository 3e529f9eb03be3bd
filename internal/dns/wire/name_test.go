package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr error
	}{
		{
			name:  "two labels",
			input: "example.com",
			want:  []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name:  "root",
			input: ".",
			want:  []byte{0},
		},
		{
			name:  "empty string behaves as root",
			input: "",
			want:  []byte{0},
		},
		{
			name:  "trailing dot ignored",
			input: "example.com.",
			want:  []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0},
		},
		{
			name:  "single label",
			input: "localhost",
			want:  []byte{9, 'l', 'o', 'c', 'a', 'l', 'h', 'o', 's', 't', 0},
		},
		{
			name:    "label over 63 bytes",
			input:   strings.Repeat("a", 64) + ".com",
			wantErr: ErrLabelTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeName(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeNameMaxLabel(t *testing.T) {
	// 63 bytes is the limit, not past it.
	label := strings.Repeat("x", 63)
	got, err := EncodeName(label)
	require.NoError(t, err)
	assert.Equal(t, byte(63), got[0])
	assert.Len(t, got, 65)
}

func TestDecodeName(t *testing.T) {
	buf := []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	name, next, err := DecodeName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "example.com", name)
	assert.Equal(t, 13, next)
}

func TestDecodeNameRoot(t *testing.T) {
	name, next, err := DecodeName([]byte{0}, 0)
	require.NoError(t, err)
	assert.Equal(t, ".", name)
	assert.Equal(t, 1, next)
}

func TestDecodeNameRoundTrip(t *testing.T) {
	names := []string{
		"example.com",
		"a.b.c.d.example",
		"localhost",
		strings.Repeat("m", 63) + ".example",
		".",
	}
	for _, n := range names {
		t.Run(n, func(t *testing.T) {
			enc, err := EncodeName(n)
			require.NoError(t, err)
			dec, next, err := DecodeName(enc, 0)
			require.NoError(t, err)
			assert.Equal(t, n, dec)
			assert.Equal(t, len(enc), next)
		})
	}
}

func TestDecodeNamePointer(t *testing.T) {
	// Name at offset 0, pointer record at offset 13 referencing it.
	buf := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0, // K = 0
		0xC0, 0x00, // M = 13: pointer to 0
	}

	atK, _, err := DecodeName(buf, 0)
	require.NoError(t, err)

	atM, next, err := DecodeName(buf, 13)
	require.NoError(t, err)
	assert.Equal(t, atK, atM)
	assert.Equal(t, 15, next, "next offset is two bytes past the pointer")
}

func TestDecodeNamePointerSuffix(t *testing.T) {
	// "www" + pointer to "example.com": labels read before the jump
	// prefix those read after it.
	buf := []byte{
		7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0,
		3, 'w', 'w', 'w', 0xC0, 0x00,
	}
	name, next, err := DecodeName(buf, 13)
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", name)
	assert.Equal(t, 19, next)
}

func TestDecodeNameForwardPointer(t *testing.T) {
	// A pointer may point forward; only bounds are checked.
	buf := []byte{
		0xC0, 0x02, // pointer to offset 2
		3, 'c', 'o', 'm', 0,
	}
	name, next, err := DecodeName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "com", name)
	assert.Equal(t, 2, next)
}

func TestDecodeNamePointerChainWithinBudget(t *testing.T) {
	// Five jumps is the maximum that still succeeds.
	buf := []byte{
		0xC0, 0x02, // 0 -> 2
		0xC0, 0x04, // 2 -> 4
		0xC0, 0x06, // 4 -> 6
		0xC0, 0x08, // 6 -> 8
		0xC0, 0x0A, // 8 -> 10
		3, 'c', 'o', 'm', 0, // 10
	}
	name, next, err := DecodeName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "com", name)
	assert.Equal(t, 2, next, "first jump fixes the resume offset")
}

func TestDecodeNameCompressionLoop(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		off  int
	}{
		{
			name: "self-referential pointer",
			buf:  []byte{0xC0, 0x00},
			off:  0,
		},
		{
			name: "two pointer cycle",
			buf:  []byte{0xC0, 0x02, 0xC0, 0x00},
			off:  0,
		},
		{
			name: "chain longer than budget",
			buf: []byte{
				0xC0, 0x02,
				0xC0, 0x04,
				0xC0, 0x06,
				0xC0, 0x08,
				0xC0, 0x0A,
				0xC0, 0x0C, // sixth jump exceeds the budget
				3, 'c', 'o', 'm', 0,
			},
			off: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeName(tt.buf, tt.off)
			assert.ErrorIs(t, err, ErrCompressionLoop)
		})
	}
}

func TestDecodeNameBounds(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		off     int
		wantErr error
	}{
		{
			name:    "empty buffer",
			buf:     nil,
			off:     0,
			wantErr: ErrOffsetOutOfBounds,
		},
		{
			name:    "offset past end",
			buf:     []byte{0},
			off:     5,
			wantErr: ErrOffsetOutOfBounds,
		},
		{
			name:    "label extends past end",
			buf:     []byte{5, 'a', 'b'},
			off:     0,
			wantErr: ErrTruncatedName,
		},
		{
			name:    "missing terminator",
			buf:     []byte{3, 'c', 'o', 'm'},
			off:     0,
			wantErr: ErrOffsetOutOfBounds,
		},
		{
			name:    "pointer missing second byte",
			buf:     []byte{0xC0},
			off:     0,
			wantErr: ErrTruncatedName,
		},
		{
			name:    "pointer target out of bounds",
			buf:     []byte{0xC0, 0x50},
			off:     0,
			wantErr: ErrOffsetOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeName(tt.buf, tt.off)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodeNameBinaryLabels(t *testing.T) {
	// Labels are opaque octets; non-ASCII bytes round-trip untouched.
	buf := []byte{3, 0xFF, 0x00, 0xFE, 3, 'c', 'o', 'm', 0}
	name, next, err := DecodeName(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, string([]byte{0xFF, 0x00, 0xFE})+".com", name)
	assert.Equal(t, 9, next)
}
