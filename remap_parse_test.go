package rclgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldust/rclgo"
)

func TestParseRemapRule(t *testing.T) {
	tests := []struct {
		rule        string
		kind        rclgo.RemapKind
		nodeFilter  string
		match       string
		replacement string
	}{
		{"chatter:=/topic", rclgo.RemapName, "", "chatter", "/topic"},
		{"/old:=/new", rclgo.RemapName, "", "/old", "/new"},
		{"talker:/old:=/new", rclgo.RemapName, "talker", "/old", "/new"},
		{"__node:=renamed", rclgo.RemapNodeName, "", "", "renamed"},
		{"__name:=renamed", rclgo.RemapNodeName, "", "", "renamed"},
		{"__ns:=/ns2", rclgo.RemapNamespace, "", "", "/ns2"},
		{"talker:__ns:=/ns2", rclgo.RemapNamespace, "talker", "", "/ns2"},
		{"talker:__node:=renamed", rclgo.RemapNodeName, "talker", "", "renamed"},
		{"/wild/*:=/flat", rclgo.RemapName, "", "/wild/*", "/flat"},
		{"/deep/**:=/flat", rclgo.RemapName, "", "/deep/**", "/flat"},
	}
	for _, tt := range tests {
		rule, err := rclgo.ParseRemapRule(tt.rule)
		require.NoError(t, err, tt.rule)

		assert.Equal(t, tt.kind, rule.Kind(), tt.rule)
		assert.Equal(t, tt.replacement, rule.ReplacementString(), tt.rule)

		filter, hasFilter := rule.NodeNameFilter()
		assert.Equal(t, tt.nodeFilter != "", hasFilter, tt.rule)
		assert.Equal(t, tt.nodeFilter, filter, tt.rule)

		match, hasMatch := rule.MatchString()
		assert.Equal(t, tt.match != "", hasMatch, tt.rule)
		assert.Equal(t, tt.match, match, tt.rule)
	}
}

func TestParseRemapRuleErrors(t *testing.T) {
	tests := []struct {
		rule   string
		offset int
	}{
		{"no_separator", 0},      // missing :=
		{":=x", 0},               // empty match
		{"chatter:=", 9},         // empty replacement
		{":foo:=x", 0},           // empty node filter
		{"9bad:=/x", 0},          // match token starts with digit
		{"chatter:=/9bad", 10},   // replacement token starts with digit
		{"bad name:=/x", 3},      // space in match
		{"talker:__ns:=rel", 13}, // namespace replacement must be absolute
		{"ta lker:/a:=/b", 2},    // space in node filter
		{"__node:=9bad", 8},      // node name replacement starts with digit
	}
	for _, tt := range tests {
		_, err := rclgo.ParseRemapRule(tt.rule)
		require.Error(t, err, tt.rule)

		var perr *rclgo.RemapParseError
		require.ErrorAs(t, err, &perr, tt.rule)
		assert.Equal(t, tt.rule, perr.Rule)
		assert.Equal(t, tt.offset, perr.Offset, "%s: %s", tt.rule, perr.Reason)
	}
}

func TestParseRemapRules(t *testing.T) {
	rules, err := rclgo.ParseRemapRules([]string{"__ns:=/sim", "chatter:=/topic"})
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, rclgo.RemapNamespace, rules[0].Kind())
	assert.Equal(t, rclgo.RemapName, rules[1].Kind())

	_, err = rclgo.ParseRemapRules([]string{"__ns:=/sim", "broken"})
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	args, err := rclgo.ParseArgs([]string{
		"proc", "--flag",
		"--ros-args", "-r", "chatter:=/topic", "--remap", "__ns:=/sim", "--",
		"tail",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"proc", "--flag", "tail"}, args.Unparsed)
	require.Len(t, args.RemapRules, 2)
	assert.Equal(t, rclgo.RemapName, args.RemapRules[0].Kind())
	assert.Equal(t, rclgo.RemapNamespace, args.RemapRules[1].Kind())
}

func TestParseArgsMultipleSections(t *testing.T) {
	args, err := rclgo.ParseArgs([]string{
		"--ros-args", "-r", "a:=/b", "--",
		"middle",
		"--ros-args", "-r", "c:=/d",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"middle"}, args.Unparsed)
	assert.Len(t, args.RemapRules, 2)
}

func TestParseArgsErrors(t *testing.T) {
	_, err := rclgo.ParseArgs([]string{"--ros-args", "-r"})
	assert.Error(t, err, "missing rule argument")

	_, err = rclgo.ParseArgs([]string{"--ros-args", "--unknown"})
	assert.Error(t, err, "unknown middleware flag")

	_, err = rclgo.ParseArgs([]string{"--ros-args", "-r", "broken"})
	assert.Error(t, err, "malformed rule")
}

func TestParseArgsEmpty(t *testing.T) {
	args, err := rclgo.ParseArgs(nil)
	require.NoError(t, err)
	assert.Empty(t, args.RemapRules)
	assert.Empty(t, args.Unparsed)
}
