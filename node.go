package rclgo

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNodeClosed is returned when creating entities on a closed node.
var ErrNodeClosed = errors.New("node is closed")

// Node is the object-oriented wrapper around a middleware participant. Its
// name and namespace are fixed at construction after remap rules have been
// applied; topic names are expanded and remapped per entity.
type Node struct {
	name      string
	namespace string
	gid       GID
	ctx       *Context
	remaps    *RemapRuleSet
	logger    Logger
	clock     Clock

	mu      sync.Mutex
	closed  bool
	pubs    []*Publisher
	subs    []*Subscription
	pubGIDs map[GID]struct{}
}

// NodeOption configures node construction.
type NodeOption func(*nodeConfig)

type nodeConfig struct {
	logger       Logger
	clock        Clock
	extraRules   []*RemapRule
	globalRemaps bool
}

// WithNodeLogger overrides the context logger for this node.
func WithNodeLogger(l Logger) NodeOption {
	return func(c *nodeConfig) { c.logger = l }
}

// WithNodeClock overrides the context clock for this node.
func WithNodeClock(cl Clock) NodeOption {
	return func(c *nodeConfig) { c.clock = cl }
}

// WithNodeRemapRules adds rules considered before the context's global
// table.
func WithNodeRemapRules(rules ...*RemapRule) NodeOption {
	return func(c *nodeConfig) { c.extraRules = append(c.extraRules, rules...) }
}

// WithoutGlobalRemaps makes the node ignore the context's rule table and
// use only rules supplied via WithNodeRemapRules.
func WithoutGlobalRemaps() NodeOption {
	return func(c *nodeConfig) { c.globalRemaps = false }
}

// NewNode creates a node in the given namespace. An empty namespace means
// the root namespace. Node name and namespace remap rules are applied here,
// scoped by the name the node was requested with.
func NewNode(ctx *Context, name, namespace string, opts ...NodeOption) (*Node, error) {
	if ctx == nil || !ctx.OK() {
		return nil, ErrShutdown
	}
	if err := ValidateNodeName(name); err != nil {
		return nil, err
	}
	if namespace == "" {
		namespace = "/"
	}
	if err := ValidateNamespace(namespace); err != nil {
		return nil, err
	}

	cfg := nodeConfig{logger: ctx.Logger(), clock: ctx.Clock(), globalRemaps: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	remaps := NewRemapRuleSet(cfg.extraRules...)
	if cfg.globalRemaps {
		remaps.Add(ctx.RemapRules().Rules()...)
	}

	n := &Node{
		name:      remaps.ResolveNodeName(name),
		namespace: remaps.ResolveNamespace(name, namespace),
		gid:       NewGID(),
		ctx:       ctx,
		remaps:    remaps,
		logger:    cfg.logger,
		clock:     cfg.clock,
		pubGIDs:   make(map[GID]struct{}),
	}
	n.logger.Debug("node created", "name", n.name, "namespace", n.namespace)
	return n, nil
}

// Name returns the node name after remapping.
func (n *Node) Name() string { return n.name }

// Namespace returns the node namespace after remapping.
func (n *Node) Namespace() string { return n.namespace }

// FullyQualifiedName returns the absolute node name, e.g. "/demo/talker".
func (n *Node) FullyQualifiedName() string {
	return FullyQualifiedNodeName(n.namespace, n.name)
}

// GID returns the node's unique identifier.
func (n *Node) GID() GID { return n.gid }

// Logger returns the node's logger.
func (n *Node) Logger() Logger { return n.logger }

// Clock returns the node's clock.
func (n *Node) Clock() Clock { return n.clock }

// ResolveTopicName expands a topic name relative to this node and applies
// name remap rules to the fully qualified result.
func (n *Node) ResolveTopicName(topic string) (string, error) {
	expanded, err := ExpandTopicName(topic, n.name, n.namespace)
	if err != nil {
		return "", err
	}
	return n.remaps.ResolveName(n.name, expanded), nil
}

// CreatePublisher creates a publisher on the resolved topic.
func (n *Node) CreatePublisher(ctx context.Context, topic string) (*Publisher, error) {
	resolved, err := n.ResolveTopicName(topic)
	if err != nil {
		return nil, err
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return nil, ErrNodeClosed
	}
	h, err := n.ctx.Transport().CreatePublisher(ctx, resolved)
	if err != nil {
		return nil, fmt.Errorf("create publisher on %s: %w", resolved, err)
	}
	pub := &Publisher{node: n, topic: resolved, h: h}
	n.pubs = append(n.pubs, pub)
	n.pubGIDs[h.GID()] = struct{}{}
	n.logger.Debug("publisher created", "topic", resolved)
	return pub, nil
}

// CreateSubscription creates a subscription on the resolved topic. The
// transport payload in opts, if any, is invoked exactly once to tune the
// transport-level options before the transport sees them.
func (n *Node) CreateSubscription(ctx context.Context, topic string, opts SubscriptionOptions, handler MessageHandler) (*Subscription, error) {
	if handler == nil {
		return nil, errors.New("subscription handler must not be nil")
	}
	resolved, err := n.ResolveTopicName(topic)
	if err != nil {
		return nil, err
	}
	topts := opts.transportOptions()

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return nil, ErrNodeClosed
	}
	deliver := func(msg Message) {
		if topts.IgnoreLocalPublications && n.ownsPublisher(msg.Publisher) {
			return
		}
		if err := handler.Handle(context.Background(), msg); err != nil {
			n.logger.Debug("subscription handler failed", "topic", resolved, "err", err.Error())
		}
	}
	h, err := n.ctx.Transport().CreateSubscription(ctx, resolved, topts, deliver)
	if err != nil {
		return nil, fmt.Errorf("create subscription on %s: %w", resolved, err)
	}
	sub := &Subscription{node: n, topic: resolved, h: h}
	n.subs = append(n.subs, sub)
	n.logger.Debug("subscription created", "topic", resolved)
	return sub, nil
}

func (n *Node) ownsPublisher(gid GID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, ok := n.pubGIDs[gid]
	return ok
}

// Close tears down the node's publishers and subscriptions. Idempotent.
func (n *Node) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	subs, pubs := n.subs, n.pubs
	n.subs, n.pubs = nil, nil
	n.mu.Unlock()

	var firstErr error
	for _, s := range subs {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, p := range pubs {
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	n.logger.Debug("node closed", "name", n.name)
	return firstErr
}
