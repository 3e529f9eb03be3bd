// Package handler orchestrates one DNS request: parse, resolve answers,
// assemble the response. It is a pure request-to-response transform; the
// transport owns the sockets on both sides.
package handler

import (
	"context"
	"fmt"

	"github.com/nwhited/fwd-dns/internal/dns/common/log"
	"github.com/nwhited/fwd-dns/internal/dns/common/rrdata"
	"github.com/nwhited/fwd-dns/internal/dns/wire"
)

// Handler turns raw request bytes into raw response bytes.
type Handler struct {
	source AnswerSource
	logger log.Logger
}

// Options configures a Handler.
type Options struct {
	Source AnswerSource
	Logger log.Logger
}

// New constructs a Handler. A nil logger is replaced with a noop logger.
func New(opts Options) (*Handler, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("answer source is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Handler{
		source: opts.Source,
		logger: opts.Logger,
	}, nil
}

// Handle processes one request: parse the header and questions, obtain
// answers from the configured source, and assemble the response with
// answer and question counts echoing the exchange. Any stage error is
// returned without response bytes; over UDP there is no reliable
// error-reply channel, so the caller logs and drops.
func (h *Handler) Handle(ctx context.Context, buf []byte) ([]byte, error) {
	reqHdr, questions, err := wire.ParseRequest(buf)
	if err != nil {
		return nil, err
	}

	answers, err := h.source.Resolve(ctx, reqHdr.ID, questions)
	if err != nil {
		return nil, fmt.Errorf("resolve answers: %w", err)
	}
	if len(answers) > 0xFFFF {
		return nil, fmt.Errorf("too many answers: %d (max 65535)", len(answers))
	}

	for _, rr := range answers {
		h.logger.Debug(map[string]any{
			"id":    reqHdr.ID,
			"name":  rr.Name,
			"type":  rr.Type.String(),
			"class": rr.Class.String(),
			"ttl":   rr.TTL,
			"data":  rrdata.Present(rr.Type, rr.Data),
		}, "Answer resolved")
	}

	respHdr := wire.ResponseHeader(reqHdr, uint16(len(answers)))
	resp, err := wire.BuildResponse(respHdr, questions, answers)
	if err != nil {
		return nil, fmt.Errorf("build response: %w", err)
	}
	return resp, nil
}
