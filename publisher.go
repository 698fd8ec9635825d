package rclgo

import (
	"context"
	"errors"
	"sync"
)

// ErrPublisherClosed is returned when publishing on a closed publisher.
var ErrPublisherClosed = errors.New("publisher is closed")

// Publisher publishes serialized samples on a single resolved topic.
type Publisher struct {
	node  *Node
	topic string
	h     TransportPublisher

	mu     sync.Mutex
	closed bool
}

// Topic returns the fully qualified, remapped topic name.
func (p *Publisher) Topic() string { return p.topic }

// GID returns the publisher's unique identifier.
func (p *Publisher) GID() GID { return p.h.GID() }

// Publish hands a serialized sample to the transport.
func (p *Publisher) Publish(ctx context.Context, data []byte) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrPublisherClosed
	}
	return p.h.Publish(ctx, data)
}

// Close releases the transport half. Idempotent.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()
	return p.h.Close()
}
