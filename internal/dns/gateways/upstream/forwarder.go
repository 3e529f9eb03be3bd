// Package upstream forwards client questions to an external resolver over
// UDP, one single-question exchange per question.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/nwhited/fwd-dns/internal/dns/common/log"
	"github.com/nwhited/fwd-dns/internal/dns/domain"
	"github.com/nwhited/fwd-dns/internal/dns/services/handler"
	"github.com/nwhited/fwd-dns/internal/dns/wire"
)

// ErrUnexpectedID means an upstream reply carried a transaction ID other
// than the one sent; such replies are rejected rather than trusted.
var ErrUnexpectedID = errors.New("unexpected reply transaction id")

// DialFunc establishes a network connection. Injectable for tests.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Forwarder resolves questions by forwarding them to one upstream DNS
// server. Each Resolve call opens a fresh ephemeral UDP endpoint, uses it
// for all of that request's exchanges, and discards it.
type Forwarder struct {
	addr    string
	timeout time.Duration
	dial    DialFunc
	logger  log.Logger
}

// Options configures a Forwarder.
type Options struct {
	// Addr is the upstream resolver address in host:port form. Required.
	Addr string

	// Timeout bounds each request's whole upstream exchange. Defaults to
	// 5 seconds.
	Timeout time.Duration

	// Dial and Logger are injectable for testing.
	Dial   DialFunc
	Logger log.Logger
}

// NewForwarder creates a Forwarder for the given upstream address.
func NewForwarder(opts Options) (*Forwarder, error) {
	if opts.Addr == "" {
		return nil, fmt.Errorf("upstream resolver address is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Forwarder{
		addr:    opts.Addr,
		timeout: opts.Timeout,
		dial:    opts.Dial,
		logger:  opts.Logger,
	}, nil
}

// Resolve forwards each question, in order, as its own single-question
// query sharing the original transaction ID, and returns all decoded
// answers concatenated in question order. Any failure at any step aborts
// the whole call; answers accumulated for earlier questions are discarded.
func (f *Forwarder) Resolve(ctx context.Context, id uint16, questions []domain.Question) ([]domain.ResourceRecord, error) {
	ctx, cancel := f.ensureDeadline(ctx)
	if cancel != nil {
		defer cancel()
	}

	conn, err := f.dial(ctx, "udp", f.addr)
	if err != nil {
		return nil, fmt.Errorf("dial upstream %s: %w", f.addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	var answers []domain.ResourceRecord
	for i, q := range questions {
		got, err := f.exchange(conn, id, q)
		if err != nil {
			return nil, fmt.Errorf("question %d (%s): %w", i, q.Name, err)
		}
		answers = append(answers, got...)
	}
	return answers, nil
}

// exchange performs one blocking query/reply round trip on conn.
func (f *Forwarder) exchange(conn net.Conn, id uint16, q domain.Question) ([]domain.ResourceRecord, error) {
	query, err := wire.BuildQuery(id, q)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	if _, err := conn.Write(query); err != nil {
		return nil, fmt.Errorf("send query: %w", err)
	}

	buf := make([]byte, wire.MaxUDPPayload)
	n, err := conn.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("receive reply: %w", err)
	}

	hdr, answers, err := wire.ParseAnswerSection(buf[:n])
	if err != nil {
		return nil, err
	}
	if hdr.ID != id {
		return nil, fmt.Errorf("%w: sent %d, got %d", ErrUnexpectedID, id, hdr.ID)
	}

	f.logger.Debug(map[string]any{
		"upstream": f.addr,
		"id":       id,
		"name":     q.Name,
		"type":     q.Type.String(),
		"answers":  len(answers),
		"rcode":    domain.UnpackFlags(hdr.Flags).RCode,
	}, "Upstream exchange completed")

	return answers, nil
}

// ensureDeadline attaches the default timeout when the context has none.
func (f *Forwarder) ensureDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, f.timeout)
	}
	return ctx, nil
}

var _ handler.AnswerSource = (*Forwarder)(nil)
