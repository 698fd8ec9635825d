package rclgo

import "context"

// Transport is the boundary to a concrete middleware implementation. The
// library resolves and remaps names, then delegates entity creation here.
// Real network transports live outside this module; see transport_contracts.go.
type Transport interface {
	// Name identifies the implementation, e.g. "loopback".
	Name() string
	CreatePublisher(ctx context.Context, topic string) (TransportPublisher, error)
	CreateSubscription(ctx context.Context, topic string, opts TransportSubscriptionOptions, deliver DeliverFunc) (TransportSubscription, error)
}

// DeliverFunc hands a received sample to the subscription wrapper.
type DeliverFunc func(msg Message)

// TransportPublisher is the middleware half of a publisher.
type TransportPublisher interface {
	GID() GID
	Publish(ctx context.Context, data []byte) error
	Close() error
}

// TransportSubscription is the middleware half of a subscription.
type TransportSubscription interface {
	GID() GID
	Close() error
}

// MessageHandler processes samples received on a subscription.
type MessageHandler interface {
	Handle(ctx context.Context, msg Message) error
}

// MessageHandlerFunc is a function adapter for MessageHandler.
type MessageHandlerFunc func(ctx context.Context, msg Message) error

func (f MessageHandlerFunc) Handle(ctx context.Context, msg Message) error { return f(ctx, msg) }
