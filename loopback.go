package rclgo

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTransportClosed is returned when creating or using an entity on a
// transport that has been closed.
var ErrTransportClosed = errors.New("transport is closed")

// LoopbackTransport is an in-process Transport that delivers published
// samples synchronously to matching subscriptions. Useful for local
// development and tests without a running middleware.
type LoopbackTransport struct {
	mu     sync.RWMutex
	subs   map[string][]*loopbackSubscription
	closed bool
}

// NewLoopbackTransport creates an empty loopback transport.
func NewLoopbackTransport() *LoopbackTransport {
	return &LoopbackTransport{subs: make(map[string][]*loopbackSubscription)}
}

func (t *LoopbackTransport) Name() string { return "loopback" }

// Close tears the transport down. Entities created from it stop working.
func (t *LoopbackTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.subs = make(map[string][]*loopbackSubscription)
	return nil
}

func (t *LoopbackTransport) CreatePublisher(ctx context.Context, topic string) (TransportPublisher, error) {
	t.mu.RLock()
	closed := t.closed
	t.mu.RUnlock()
	if closed {
		return nil, ErrTransportClosed
	}
	return &loopbackPublisher{t: t, topic: topic, gid: NewGID()}, nil
}

func (t *LoopbackTransport) CreateSubscription(ctx context.Context, topic string, opts TransportSubscriptionOptions, deliver DeliverFunc) (TransportSubscription, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrTransportClosed
	}
	sub := &loopbackSubscription{t: t, topic: topic, gid: NewGID(), opts: opts, deliver: deliver}
	t.subs[topic] = append(t.subs[topic], sub)
	return sub, nil
}

func (t *LoopbackTransport) publish(topic string, data []byte, from GID) error {
	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return ErrTransportClosed
	}
	subs := make([]*loopbackSubscription, len(t.subs[topic]))
	copy(subs, t.subs[topic])
	t.mu.RUnlock()

	msg := Message{Topic: topic, Data: data, Publisher: from, Received: time.Now()}
	for _, sub := range subs {
		sub.deliver(msg)
	}
	return nil
}

func (t *LoopbackTransport) dropSubscription(sub *loopbackSubscription) {
	t.mu.Lock()
	defer t.mu.Unlock()
	list := t.subs[sub.topic]
	for i, s := range list {
		if s == sub {
			t.subs[sub.topic] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

type loopbackPublisher struct {
	t      *LoopbackTransport
	topic  string
	gid    GID
	mu     sync.Mutex
	closed bool
}

func (p *loopbackPublisher) GID() GID { return p.gid }

func (p *loopbackPublisher) Publish(ctx context.Context, data []byte) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrTransportClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.t.publish(p.topic, data, p.gid)
}

func (p *loopbackPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

type loopbackSubscription struct {
	t       *LoopbackTransport
	topic   string
	gid     GID
	opts    TransportSubscriptionOptions
	deliver DeliverFunc

	closeOnce sync.Once
}

func (s *loopbackSubscription) GID() GID { return s.gid }

func (s *loopbackSubscription) Close() error {
	s.closeOnce.Do(func() { s.t.dropSubscription(s) })
	return nil
}
