package rclgo

import "sync"

// Subscription receives samples on a single resolved topic and hands them
// to its MessageHandler.
type Subscription struct {
	node  *Node
	topic string
	h     TransportSubscription

	mu     sync.Mutex
	closed bool
}

// Topic returns the fully qualified, remapped topic name.
func (s *Subscription) Topic() string { return s.topic }

// GID returns the subscription's unique identifier.
func (s *Subscription) GID() GID { return s.h.GID() }

// Close releases the transport half. Idempotent.
func (s *Subscription) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()
	return s.h.Close()
}
