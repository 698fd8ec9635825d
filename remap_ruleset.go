package rclgo

import "sync"

// RemapRuleSet is an ordered table of remap rules, typically owned by a
// Context (process-wide rules) or built per node. Resolution gives rules
// scoped to the querying node priority over global rules; within each class
// the first matching rule in table order wins.
type RemapRuleSet struct {
	mu    sync.RWMutex
	rules []*RemapRule
}

// NewRemapRuleSet creates a rule set holding the given rules in order.
func NewRemapRuleSet(rules ...*RemapRule) *RemapRuleSet {
	s := &RemapRuleSet{}
	s.Add(rules...)
	return s
}

// Add appends rules to the table. Nil entries are dropped.
func (s *RemapRuleSet) Add(rules ...*RemapRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rules {
		if r != nil {
			s.rules = append(s.rules, r)
		}
	}
}

// Rules returns a copy of the table in resolution order.
func (s *RemapRuleSet) Rules() []*RemapRule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*RemapRule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of rules in the table.
func (s *RemapRuleSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}

// firstMatch scans node-scoped rules of the given kind before global ones,
// taking the first rule that fires in each pass.
func (s *RemapRuleSet) firstMatch(kind RemapKind, nodeName, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, global := range []bool{false, true} {
		for _, r := range s.rules {
			if r.Kind() != kind || r.IsGlobal() != global {
				continue
			}
			if v, ok := r.Remap(nodeName, name); ok {
				return v, true
			}
		}
	}
	return "", false
}

// ResolveNodeName applies node name rules to the given node name, returning
// it unchanged when no rule fires.
func (s *RemapRuleSet) ResolveNodeName(nodeName string) string {
	if v, ok := s.firstMatch(RemapNodeName, nodeName, ""); ok {
		return v
	}
	return nodeName
}

// ResolveNamespace applies namespace rules for the given node, returning the
// namespace unchanged when no rule fires.
func (s *RemapRuleSet) ResolveNamespace(nodeName, namespace string) string {
	if v, ok := s.firstMatch(RemapNamespace, nodeName, ""); ok {
		return v
	}
	return namespace
}

// ResolveName applies topic/service name rules to a fully qualified name on
// behalf of the given node, returning the name unchanged when no rule fires.
func (s *RemapRuleSet) ResolveName(nodeName, name string) string {
	if v, ok := s.firstMatch(RemapName, nodeName, name); ok {
		return v
	}
	return name
}
