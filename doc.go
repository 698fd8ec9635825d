// Package rclgo provides object-oriented wrappers over a lower-level
// middleware transport: contexts, nodes, publishers, subscriptions, and the
// name remapping rules applied when node names, namespaces, and topic names
// are resolved at runtime.
//
// Remap rules are parsed from command line arguments
// ("--ros-args -r old:=new --") or constructed directly, and are immutable
// after construction, so concurrent name resolution needs no locking.
//
// Transports implement the Transport interface; an in-process
// LoopbackTransport is included for local development and tests. Vendor
// implementations customize subscription creation through the
// TransportPayload hook.
package rclgo
