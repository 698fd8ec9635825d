package rclgo

// ContentFilterOptions requests server-side filtering of samples where the
// transport supports it.
type ContentFilterOptions struct {
	// Expression in the transport's filter language.
	Expression string
	// Parameters referenced by the expression, in order.
	Parameters []string
}

// TransportSubscriptionOptions is the transport-level record handed to a
// Transport when a subscription is created. Transport implementations read
// from it; vendor payloads may tune it via ModifySubscriptionOptions before
// the transport sees it.
type TransportSubscriptionOptions struct {
	// IgnoreLocalPublications drops samples published by the same node.
	IgnoreLocalPublications bool
	// RequireUniqueNetworkFlowEndpoints asks the transport to give this
	// subscription its own network flow.
	RequireUniqueNetworkFlowEndpoints bool
	// ContentFilter is nil when no filtering was requested.
	ContentFilter *ContentFilterOptions
	// VendorPayload carries implementation-specific tuning. Its type is
	// agreed between a vendor payload and the matching transport.
	VendorPayload any
}

// TransportPayload is the extension point a vendor middleware implementation
// uses to customize subscription creation. ModifySubscriptionOptions is
// invoked once while the subscription is being constructed and must only
// touch the passed record; it must not change the logical semantics of the
// subscription, only transport-level knobs.
type TransportPayload interface {
	ModifySubscriptionOptions(opts *TransportSubscriptionOptions)
}

// DefaultTransportPayload is the payload used when none is supplied.
type DefaultTransportPayload struct{}

// ModifySubscriptionOptions leaves the transport options untouched.
func (DefaultTransportPayload) ModifySubscriptionOptions(opts *TransportSubscriptionOptions) {}

// SubscriptionOptions configures a subscription created through a Node.
type SubscriptionOptions struct {
	IgnoreLocalPublications bool
	ContentFilter           *ContentFilterOptions
	// TransportPayload customizes transport-level options; nil means the
	// no-op DefaultTransportPayload.
	TransportPayload TransportPayload
}

func (o SubscriptionOptions) transportOptions() TransportSubscriptionOptions {
	topts := TransportSubscriptionOptions{
		IgnoreLocalPublications: o.IgnoreLocalPublications,
		ContentFilter:           o.ContentFilter,
	}
	payload := o.TransportPayload
	if payload == nil {
		payload = DefaultTransportPayload{}
	}
	payload.ModifySubscriptionOptions(&topts)
	return topts
}
