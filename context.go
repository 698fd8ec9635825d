package rclgo

import (
	"errors"
	"os"
	"sync"
)

// ErrShutdown is returned when creating entities from a Context that has
// been shut down.
var ErrShutdown = errors.New("context is shut down")

// Environment fallback for a process-wide namespace, applied as a global
// namespace rule after any command line rules.
const namespaceEnv = "RCLGO_NAMESPACE"

// Context owns process-wide middleware state: the global remap rule table,
// the transport, and the default logger and clock handed to nodes.
type Context struct {
	remaps    *RemapRuleSet
	unparsed  []string
	logger    Logger
	clock     Clock
	transport Transport

	mu       sync.Mutex
	shutdown bool
}

// ContextOption configures a Context.
type ContextOption func(*contextConfig)

type contextConfig struct {
	logger    Logger
	clock     Clock
	transport Transport
	rules     []*RemapRule
}

// WithLogger sets the logger handed to nodes by default.
func WithLogger(l Logger) ContextOption {
	return func(c *contextConfig) { c.logger = l }
}

// WithClock sets the clock handed to nodes by default.
func WithClock(cl Clock) ContextOption {
	return func(c *contextConfig) { c.clock = cl }
}

// WithTransport sets the middleware transport. Defaults to an in-process
// loopback.
func WithTransport(t Transport) ContextOption {
	return func(c *contextConfig) { c.transport = t }
}

// WithRemapRules appends global rules ahead of any parsed from args.
func WithRemapRules(rules ...*RemapRule) ContextOption {
	return func(c *contextConfig) { c.rules = append(c.rules, rules...) }
}

// NewContext initializes a context from command line arguments. Remap rules
// inside a "--ros-args ... --" section become the global rule table; other
// arguments are kept untouched and available via UnparsedArgs. When the
// RCLGO_NAMESPACE environment variable names a valid namespace, a global
// namespace rule is appended after all explicit rules.
func NewContext(args []string, opts ...ContextOption) (*Context, error) {
	parsed, err := ParseArgs(args)
	if err != nil {
		return nil, err
	}

	cfg := contextConfig{
		logger:    NewStdLogger(),
		clock:     NewSystemClock(),
		transport: NewLoopbackTransport(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	remaps := NewRemapRuleSet(cfg.rules...)
	remaps.Add(parsed.RemapRules...)
	if ns := os.Getenv(namespaceEnv); ns != "" {
		rule, err := NewNamespaceRule(ns)
		if err != nil {
			return nil, err
		}
		remaps.Add(rule)
	}

	return &Context{
		remaps:    remaps,
		unparsed:  parsed.Unparsed,
		logger:    cfg.logger,
		clock:     cfg.clock,
		transport: cfg.transport,
	}, nil
}

// OK reports whether the context is still usable.
func (c *Context) OK() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.shutdown
}

// Shutdown marks the context unusable. Idempotent. Nodes created from it
// must be closed separately.
func (c *Context) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.shutdown {
		return nil
	}
	c.shutdown = true
	c.logger.Debug("context shut down")
	return nil
}

// RemapRules returns the process-wide rule table.
func (c *Context) RemapRules() *RemapRuleSet { return c.remaps }

// UnparsedArgs returns the arguments outside any middleware section.
func (c *Context) UnparsedArgs() []string {
	out := make([]string, len(c.unparsed))
	copy(out, c.unparsed)
	return out
}

// Logger returns the context's logger.
func (c *Context) Logger() Logger { return c.logger }

// Clock returns the context's clock.
func (c *Context) Clock() Clock { return c.clock }

// Transport returns the middleware transport.
func (c *Context) Transport() Transport { return c.transport }
