package rclgo

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCSubscriptionConfig is the vendor record a gRPC-backed transport reads
// from TransportSubscriptionOptions.VendorPayload.
type GRPCSubscriptionConfig struct {
	DialOptions []grpc.DialOption
	CallOptions []grpc.CallOption
}

// GRPCSubscriptionPayload tunes subscription creation for gRPC-backed
// transports, e.g. ones that stream samples from an out-of-process agent
// over a local socket.
type GRPCSubscriptionPayload struct {
	// MaxRecvMsgSize caps the size of a received sample; 0 keeps the
	// transport default.
	MaxRecvMsgSize int
	// Insecure dials without transport credentials, the usual setting for
	// unix domain socket agents.
	Insecure    bool
	DialOptions []grpc.DialOption
	CallOptions []grpc.CallOption
}

// ModifySubscriptionOptions installs a GRPCSubscriptionConfig as the vendor
// payload. Only transport-level knobs are touched.
func (p *GRPCSubscriptionPayload) ModifySubscriptionOptions(opts *TransportSubscriptionOptions) {
	cfg := &GRPCSubscriptionConfig{
		DialOptions: append([]grpc.DialOption(nil), p.DialOptions...),
		CallOptions: append([]grpc.CallOption(nil), p.CallOptions...),
	}
	if p.Insecure {
		cfg.DialOptions = append(cfg.DialOptions, grpc.WithTransportCredentials(insecure.NewCredentials()))
	}
	if p.MaxRecvMsgSize > 0 {
		cfg.CallOptions = append(cfg.CallOptions, grpc.MaxCallRecvMsgSize(p.MaxRecvMsgSize))
	}
	opts.VendorPayload = cfg
}
