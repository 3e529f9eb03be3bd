// Package local answers questions without an upstream resolver: every
// question maps to a fixed A record. It stands in for real resolution when
// no resolver address is configured.
package local

import (
	"context"
	"fmt"
	"net"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
	"github.com/nwhited/fwd-dns/internal/dns/services/handler"
)

// Static is an AnswerSource returning one fixed-address A record per
// question, regardless of the question's type or class.
type Static struct {
	addr [4]byte
	ttl  uint32
}

// NewStatic creates a Static source answering with the given IPv4 address
// and TTL.
func NewStatic(addr string, ttl uint32) (*Static, error) {
	ip := net.ParseIP(addr)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid IPv4 address: %q", addr)
	}
	s := &Static{ttl: ttl}
	copy(s.addr[:], ip.To4())
	return s, nil
}

// Resolve maps each question to an A record for the configured address,
// in question order. The transaction ID is unused; it exists to satisfy
// the AnswerSource contract shared with the forwarder.
func (s *Static) Resolve(_ context.Context, _ uint16, questions []domain.Question) ([]domain.ResourceRecord, error) {
	answers := make([]domain.ResourceRecord, 0, len(questions))
	for _, q := range questions {
		answers = append(answers, domain.NewARecord(q.Name, s.ttl, s.addr))
	}
	return answers, nil
}

var _ handler.AnswerSource = (*Static)(nil)
