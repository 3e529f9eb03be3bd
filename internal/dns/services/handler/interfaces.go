package handler

import (
	"context"

	"github.com/nwhited/fwd-dns/internal/dns/domain"
)

// AnswerSource produces the answer records for a request's questions.
// Implementations: the upstream forwarder when a resolver is configured,
// and the static local source otherwise. The transaction ID is passed
// through so forwarded queries can reuse it.
type AnswerSource interface {
	Resolve(ctx context.Context, id uint16, questions []domain.Question) ([]domain.ResourceRecord, error)
}
