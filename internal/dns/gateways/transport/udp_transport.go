// Package transport provides the UDP server transport. It owns the
// listening socket and the receive loop, and hands raw packets to the
// request handler; a failed request is logged and dropped, never answered
// with garbage and never allowed to crash the loop.
package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/nwhited/fwd-dns/internal/dns/common/log"
	"github.com/nwhited/fwd-dns/internal/dns/wire"
)

// PacketHandler turns one request datagram into one response datagram.
type PacketHandler interface {
	Handle(ctx context.Context, req []byte) ([]byte, error)
}

// UDPTransport implements standard DNS over UDP (RFC 1035). Each packet is
// handled on its own goroutine so one slow or malformed request cannot
// stall the others; a semaphore bounds how many run at once.
type UDPTransport struct {
	addr   string
	conn   *net.UDPConn
	logger log.Logger
	sem    chan struct{}

	// Synchronization for graceful shutdown
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
}

// NewUDPTransport creates a UDP transport bound to addr when started.
// maxInflight bounds concurrent request handling; values below 1 are
// treated as 1.
func NewUDPTransport(addr string, maxInflight int, logger log.Logger) *UDPTransport {
	if maxInflight < 1 {
		maxInflight = 1
	}
	return &UDPTransport{
		addr:   addr,
		logger: logger,
		sem:    make(chan struct{}, maxInflight),
		stopCh: make(chan struct{}),
	}
}

// Start binds the UDP socket and begins the receive loop.
func (t *UDPTransport) Start(ctx context.Context, h PacketHandler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("UDP transport already running")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address %s: %w", t.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind UDP socket on %s: %w", t.addr, err)
	}

	t.conn = conn
	t.running = true

	t.logger.Info(map[string]any{
		"transport": "udp",
		"address":   conn.LocalAddr().String(),
	}, "DNS transport started")

	go t.listenLoop(ctx, h)

	return nil
}

// Stop shuts the transport down, closing the socket so the loop exits.
func (t *UDPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	close(t.stopCh)

	var closeErr error
	if t.conn != nil {
		closeErr = t.conn.Close()
	}
	t.running = false

	t.logger.Info(map[string]any{
		"transport": "udp",
		"address":   t.addr,
	}, "DNS transport stopped")

	return closeErr
}

// Address returns the configured bind address.
func (t *UDPTransport) Address() string {
	return t.addr
}

// listenLoop reads packets and dispatches them until shutdown.
func (t *UDPTransport) listenLoop(ctx context.Context, h PacketHandler) {
	buffer := make([]byte, wire.MaxUDPPayload)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		default:
			n, clientAddr, err := t.conn.ReadFromUDP(buffer)
			if err != nil {
				t.mu.RLock()
				running := t.running
				t.mu.RUnlock()
				if !running {
					return // normal shutdown
				}
				t.logger.Warn(map[string]any{
					"error": err.Error(),
				}, "Failed to read UDP packet")
				continue
			}

			packet := make([]byte, n)
			copy(packet, buffer[:n])

			t.sem <- struct{}{}
			go func() {
				defer func() { <-t.sem }()
				t.handlePacket(ctx, packet, clientAddr, h)
			}()
		}
	}
}

// handlePacket runs one request through the handler and sends the reply.
func (t *UDPTransport) handlePacket(ctx context.Context, data []byte, clientAddr *net.UDPAddr, h PacketHandler) {
	resp, err := h.Handle(ctx, data)
	if err != nil {
		// No reliable error-reply channel over UDP: log and drop.
		t.logger.Warn(map[string]any{
			"client": clientAddr.String(),
			"size":   len(data),
			"error":  err.Error(),
		}, "Dropped request")
		return
	}

	if _, err := t.conn.WriteToUDP(resp, clientAddr); err != nil {
		t.logger.Error(map[string]any{
			"client": clientAddr.String(),
			"error":  err.Error(),
		}, "Failed to send DNS response")
		return
	}

	t.logger.Debug(map[string]any{
		"client":   clientAddr.String(),
		"req_size": len(data),
		"size":     len(resp),
	}, "Sent DNS response")
}
