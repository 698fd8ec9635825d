package rclgo

// Transport-side contract notes:
//
// A transport implementation is handed fully qualified, already-remapped
// topic names; it must not rewrite them further. Name resolution, including
// remap rule precedence, is owned by this library.
//
// TransportSubscriptionOptions arrives after the subscription's
// TransportPayload (if any) has run. A transport that recognizes the
// concrete type of VendorPayload applies it; one that does not must ignore
// it rather than fail.
//
// Suggested vendor pattern:
//
// type natsTransport struct{ conn *nats.Conn }
//
// func (t *natsTransport) CreateSubscription(ctx context.Context, topic string,
//     opts rclgo.TransportSubscriptionOptions, deliver rclgo.DeliverFunc) (rclgo.TransportSubscription, error) {
//     cfg, _ := opts.VendorPayload.(*rclgo.NATSSubscriptionConfig)
//     // subscribe with cfg.QueueGroup / pending limits when cfg != nil
// }
//
// DeliverFunc may be called from transport-owned goroutines. Implementations
// should not block in it; the wrapper's handler runs inline.
//
// This file is documentation-only (no runtime code required).
