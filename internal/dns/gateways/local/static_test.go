package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

func TestNewStatic(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"valid address", "8.8.8.8", false},
		{"loopback", "127.0.0.1", false},
		{"empty", "", true},
		{"hostname", "dns.example.com", true},
		{"ipv6", "2001:db8::1", true},
		{"garbage", "999.1.2.3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStatic(tt.addr, 60)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestStaticResolve(t *testing.T) {
	s, err := NewStatic("8.8.8.8", 60)
	require.NoError(t, err)

	questions := []domain.Question{
		{Name: "a.example.com", Type: domain.RRTypeA, Class: domain.RRClassIN},
		{Name: "b.example.com", Type: domain.RRTypeAAAA, Class: domain.RRClassIN},
	}

	answers, err := s.Resolve(context.Background(), 1, questions)
	require.NoError(t, err)
	require.Len(t, answers, 2)

	// One A record per question, in question order, regardless of the
	// question's own type.
	for i, rr := range answers {
		assert.Equal(t, questions[i].Name, rr.Name)
		assert.Equal(t, domain.RRTypeA, rr.Type)
		assert.Equal(t, domain.RRClassIN, rr.Class)
		assert.Equal(t, uint32(60), rr.TTL)
		assert.Equal(t, []byte{8, 8, 8, 8}, rr.Data)
		assert.Equal(t, uint16(4), rr.RDLength)
	}
}

func TestStaticResolveNoQuestions(t *testing.T) {
	s, err := NewStatic("1.2.3.4", 30)
	require.NoError(t, err)

	answers, err := s.Resolve(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, answers)
}
