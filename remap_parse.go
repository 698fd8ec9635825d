package rclgo

import (
	"errors"
	"fmt"
	"strings"
)

// Remap rule syntax tokens.
const (
	remapSeparator = ":="
	matchNode      = "__node"
	matchNodeAlias = "__name"
	matchNamespace = "__ns"

	// Command line markers understood by ParseArgs.
	argsFlag      = "--ros-args"
	argsEndFlag   = "--"
	remapFlag     = "-r"
	remapFlagLong = "--remap"
)

// RemapParseError reports a malformed remap rule string. Offset is the byte
// offset into Rule where parsing failed.
type RemapParseError struct {
	Rule   string
	Offset int
	Reason string
}

func (e *RemapParseError) Error() string {
	return fmt.Sprintf("invalid remap rule %q: %s (at offset %d)", e.Rule, e.Reason, e.Offset)
}

func parseError(rule string, offset int, reason string) error {
	return &RemapParseError{Rule: rule, Offset: offset, Reason: reason}
}

// nestedParseError re-reports a validation failure inside part of a rule,
// shifting the offset into the full rule string.
func nestedParseError(rule string, base int, err error) error {
	if ne, ok := errAsInvalidName(err); ok {
		return parseError(rule, base+ne.Offset, ne.Reason)
	}
	return parseError(rule, base, err.Error())
}

// ParseRemapRule parses one rule in "match:=replacement" syntax, optionally
// prefixed with a node name scope ("node:match:=replacement"). The special
// matches __node (or __name) and __ns produce node name and namespace rules;
// anything else produces a topic/service name rule.
func ParseRemapRule(rule string) (*RemapRule, error) {
	sep := strings.Index(rule, remapSeparator)
	if sep < 0 {
		return nil, parseError(rule, 0, "missing \":=\" separator")
	}
	lhs, replacement := rule[:sep], rule[sep+len(remapSeparator):]
	replOffset := sep + len(remapSeparator)

	match := lhs
	matchOffset := 0
	var opts []RuleOption
	if i := strings.Index(lhs, ":"); i >= 0 {
		nodeFilter := lhs[:i]
		if nodeFilter == "" {
			return nil, parseError(rule, 0, "node name filter must not be empty")
		}
		if err := ValidateNodeName(nodeFilter); err != nil {
			return nil, nestedParseError(rule, 0, err)
		}
		opts = append(opts, ForNode(nodeFilter))
		match = lhs[i+1:]
		matchOffset = i + 1
	}

	if match == "" {
		return nil, parseError(rule, matchOffset, "match must not be empty")
	}
	if replacement == "" {
		return nil, parseError(rule, replOffset, "replacement must not be empty")
	}

	var (
		parsed *RemapRule
		err    error
	)
	switch match {
	case matchNode, matchNodeAlias:
		parsed, err = NewNodeNameRule(replacement, opts...)
	case matchNamespace:
		parsed, err = NewNamespaceRule(replacement, opts...)
	default:
		parsed, err = NewNameRule(match, replacement, opts...)
	}
	if err != nil {
		return nil, nestedParseError(rule, 0, unwrapRuleError(err, match, matchOffset, replacement, replOffset))
	}
	return parsed, nil
}

// unwrapRuleError maps a constructor validation error back onto the part of
// the rule string it refers to.
func unwrapRuleError(err error, match string, matchOffset int, replacement string, replOffset int) error {
	ne, ok := errAsInvalidName(err)
	if !ok {
		return err
	}
	switch ne.Name {
	case match:
		return &InvalidNameError{Name: ne.Name, Offset: matchOffset + ne.Offset, Reason: ne.Reason}
	case replacement:
		return &InvalidNameError{Name: ne.Name, Offset: replOffset + ne.Offset, Reason: ne.Reason}
	}
	return err
}

func errAsInvalidName(err error) (*InvalidNameError, bool) {
	var ne *InvalidNameError
	if errors.As(err, &ne) {
		return ne, true
	}
	return nil, false
}

// ParseRemapRules parses a list of rule strings, failing on the first
// malformed one.
func ParseRemapRules(rules []string) ([]*RemapRule, error) {
	out := make([]*RemapRule, 0, len(rules))
	for _, s := range rules {
		r, err := ParseRemapRule(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// Args is the result of splitting a command line into middleware arguments
// and everything else.
type Args struct {
	// RemapRules holds the parsed rules in command line order.
	RemapRules []*RemapRule
	// Unparsed holds the arguments outside any --ros-args section, untouched.
	Unparsed []string
}

// ParseArgs extracts remap rules from a command line. Rules appear inside a
// "--ros-args ... --" section as "-r rule" or "--remap rule"; arguments
// outside such sections are returned untouched in Args.Unparsed.
func ParseArgs(args []string) (*Args, error) {
	out := &Args{}
	inSection := false
	for i := 0; i < len(args); i++ {
		a := args[i]
		if !inSection {
			if a == argsFlag {
				inSection = true
			} else {
				out.Unparsed = append(out.Unparsed, a)
			}
			continue
		}
		switch a {
		case argsEndFlag:
			inSection = false
		case remapFlag, remapFlagLong:
			if i+1 >= len(args) {
				return nil, fmt.Errorf("%s requires a rule argument", a)
			}
			i++
			rule, err := ParseRemapRule(args[i])
			if err != nil {
				return nil, err
			}
			out.RemapRules = append(out.RemapRules, rule)
		default:
			return nil, fmt.Errorf("unrecognized middleware argument %q", a)
		}
	}
	return out, nil
}
