package rclgo

import (
	"fmt"
	"strings"
)

// RemapKind discriminates the kinds of remap rule.
type RemapKind string

const (
	// RemapNone is the kind of a zero-value rule: it matches every node and
	// every name but remaps to the identity.
	RemapNone RemapKind = ""
	// RemapNodeName rewrites the name of a node.
	RemapNodeName RemapKind = "NODE_NAME"
	// RemapNamespace rewrites the namespace of a node.
	RemapNamespace RemapKind = "NAMESPACE"
	// RemapName rewrites a topic or service name.
	RemapName RemapKind = "NAME"
)

// RemapRule is a single name remapping rule, optionally scoped to one node.
//
// Rules are immutable after construction and safe for concurrent use without
// locking. The zero value matches all node names and all names but returns
// the identity when asked to remap, which distinguishes it from a rule with
// an explicit replacement.
type RemapRule struct {
	kind        RemapKind
	nodeName    string
	hasNodeName bool
	match       string
	hasMatch    bool
	replacement string
}

// RuleOption configures an explicitly constructed rule.
type RuleOption func(*RemapRule)

// ForNode scopes a rule to a single node. Without it rules are global.
func ForNode(nodeName string) RuleOption {
	return func(r *RemapRule) {
		r.nodeName = nodeName
		r.hasNodeName = true
	}
}

func finishRule(r *RemapRule, opts []RuleOption) (*RemapRule, error) {
	for _, opt := range opts {
		opt(r)
	}
	if r.hasNodeName {
		if err := ValidateNodeName(r.nodeName); err != nil {
			return nil, fmt.Errorf("node name filter: %w", err)
		}
	}
	return r, nil
}

// NewNodeNameRule returns a rule that renames a node. It has no match
// pattern: once the node name filter passes it applies unconditionally.
func NewNodeNameRule(replacement string, opts ...RuleOption) (*RemapRule, error) {
	if err := ValidateNodeName(replacement); err != nil {
		return nil, fmt.Errorf("node name replacement: %w", err)
	}
	return finishRule(&RemapRule{kind: RemapNodeName, replacement: replacement}, opts)
}

// NewNamespaceRule returns a rule that moves a node into another namespace.
func NewNamespaceRule(replacement string, opts ...RuleOption) (*RemapRule, error) {
	if err := ValidateNamespace(replacement); err != nil {
		return nil, fmt.Errorf("namespace replacement: %w", err)
	}
	return finishRule(&RemapRule{kind: RemapNamespace, replacement: replacement}, opts)
}

// NewNameRule returns a rule that rewrites topic and service names whose
// fully qualified form matches the pattern. The pattern may use "*" for a
// single token and "**" for any number of tokens.
func NewNameRule(match, replacement string, opts ...RuleOption) (*RemapRule, error) {
	if err := validateName(match, true, false); err != nil {
		return nil, fmt.Errorf("match pattern: %w", err)
	}
	if err := ValidateTopicName(replacement); err != nil {
		return nil, fmt.Errorf("name replacement: %w", err)
	}
	rule := &RemapRule{kind: RemapName, match: match, hasMatch: true, replacement: replacement}
	return finishRule(rule, opts)
}

// Kind returns the kind of the rule; RemapNone for the zero value.
func (r *RemapRule) Kind() RemapKind { return r.kind }

// IsGlobal reports whether the rule applies to every node in the process.
func (r *RemapRule) IsGlobal() bool { return !r.hasNodeName }

// NodeNameFilter returns the node this rule is scoped to, if any.
func (r *RemapRule) NodeNameFilter() (string, bool) { return r.nodeName, r.hasNodeName }

// MatchString returns the rule's match pattern. Node name and namespace
// rules have none.
func (r *RemapRule) MatchString() (string, bool) { return r.match, r.hasMatch }

// ReplacementString returns the value substituted when the rule fires. It is
// empty only for the zero-value identity rule.
func (r *RemapRule) ReplacementString() string { return r.replacement }

// AppliesToNodeName reports whether the rule applies within the given node.
// Global rules apply to every node; scoped rules require an exact match.
func (r *RemapRule) AppliesToNodeName(nodeName string) bool {
	if !r.hasNodeName {
		return true
	}
	return r.nodeName == nodeName
}

// MatchesName reports whether the candidate name satisfies the rule's match
// pattern. Rules without a pattern match every name.
func (r *RemapRule) MatchesName(name string) bool {
	if !r.hasMatch {
		return true
	}
	return matchPattern(r.match, name)
}

// Remap returns the replacement if the rule applies to the node and the name
// matches. The second return is false when the rule does not fire. A
// zero-value rule fires for every input and returns the name unchanged.
func (r *RemapRule) Remap(nodeName, name string) (string, bool) {
	if !r.AppliesToNodeName(nodeName) {
		return "", false
	}
	if !r.MatchesName(name) {
		return "", false
	}
	if r.kind == RemapNone {
		return name, true
	}
	return r.replacement, true
}

// String renders the rule in command line remap syntax.
func (r *RemapRule) String() string {
	var b strings.Builder
	if r.hasNodeName {
		b.WriteString(r.nodeName)
		b.WriteByte(':')
	}
	switch r.kind {
	case RemapNodeName:
		b.WriteString(matchNode)
	case RemapNamespace:
		b.WriteString(matchNamespace)
	default:
		b.WriteString(r.match)
	}
	b.WriteString(remapSeparator)
	b.WriteString(r.replacement)
	return b.String()
}

// matchPattern matches a candidate name against a pattern token by token.
// "*" consumes exactly one token, "**" consumes zero or more. Total over all
// inputs, including empty strings.
func matchPattern(pattern, name string) bool {
	return matchTokens(strings.Split(pattern, "/"), strings.Split(name, "/"))
}

func matchTokens(pattern, name []string) bool {
	if len(pattern) == 0 {
		return len(name) == 0
	}
	switch pattern[0] {
	case "**":
		if matchTokens(pattern[1:], name) {
			return true
		}
		if len(name) == 0 {
			return false
		}
		return matchTokens(pattern, name[1:])
	case "*":
		return len(name) > 0 && name[0] != "" && matchTokens(pattern[1:], name[1:])
	default:
		return len(name) > 0 && pattern[0] == name[0] && matchTokens(pattern[1:], name[1:])
	}
}
