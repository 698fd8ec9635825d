package rclgo

import "github.com/nats-io/nats.go"

// NATSSubscriptionConfig is the vendor record a NATS-backed transport reads
// from TransportSubscriptionOptions.VendorPayload.
type NATSSubscriptionConfig struct {
	// QueueGroup makes the subscription part of a NATS queue group so
	// samples are load balanced across members. Empty means no group.
	QueueGroup string
	// PendingMsgLimit and PendingBytesLimit bound the subscription's
	// internal delivery queue.
	PendingMsgLimit   int
	PendingBytesLimit int
	// SubOpts are passed through to the transport's subscribe call.
	SubOpts []nats.SubOpt
}

// NATSSubscriptionPayload tunes subscription creation for NATS-backed
// transports. Zero fields fall back to the nats.go defaults.
type NATSSubscriptionPayload struct {
	QueueGroup        string
	PendingMsgLimit   int
	PendingBytesLimit int
	SubOpts           []nats.SubOpt
}

// ModifySubscriptionOptions installs a NATSSubscriptionConfig as the vendor
// payload. Only transport-level knobs are touched.
func (p *NATSSubscriptionPayload) ModifySubscriptionOptions(opts *TransportSubscriptionOptions) {
	cfg := &NATSSubscriptionConfig{
		QueueGroup:        p.QueueGroup,
		PendingMsgLimit:   p.PendingMsgLimit,
		PendingBytesLimit: p.PendingBytesLimit,
		SubOpts:           p.SubOpts,
	}
	if cfg.PendingMsgLimit == 0 {
		cfg.PendingMsgLimit = nats.DefaultSubPendingMsgsLimit
	}
	if cfg.PendingBytesLimit == 0 {
		cfg.PendingBytesLimit = nats.DefaultSubPendingBytesLimit
	}
	opts.VendorPayload = cfg
}
