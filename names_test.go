package rclgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldust/rclgo"
)

func TestValidateNodeName(t *testing.T) {
	for _, name := range []string{"talker", "node_1", "_private", "N"} {
		assert.NoError(t, rclgo.ValidateNodeName(name), name)
	}
	invalid := []struct {
		name   string
		offset int
	}{
		{"", 0},
		{"9node", 0},
		{"has-dash", 3},
		{"has space", 3},
		{"ns/in/name", 2},
	}
	for _, tt := range invalid {
		err := rclgo.ValidateNodeName(tt.name)
		require.Error(t, err, tt.name)
		var ne *rclgo.InvalidNameError
		require.ErrorAs(t, err, &ne)
		assert.Equal(t, tt.offset, ne.Offset, "%s: %s", tt.name, ne.Reason)
	}
}

func TestValidateNamespace(t *testing.T) {
	for _, ns := range []string{"/", "/demo", "/a/b/c"} {
		assert.NoError(t, rclgo.ValidateNamespace(ns), ns)
	}
	for _, ns := range []string{"", "relative", "/trailing/", "//double", "/9bad", "/ok/9bad"} {
		assert.Error(t, rclgo.ValidateNamespace(ns), ns)
	}
}

func TestValidateTopicName(t *testing.T) {
	valid := []string{
		"chatter", "/chatter", "/a/b/c", "~", "~/status",
		"{node}/status", "/ns/{ns}/x", "rel/sub",
	}
	for _, name := range valid {
		assert.NoError(t, rclgo.ValidateTopicName(name), name)
	}
	invalid := []string{
		"", "/", "/trailing/", "a//b", "~nosep", "has space",
		"/9bad", "{}", "{9bad}", "*", "/wild/*",
	}
	for _, name := range invalid {
		assert.Error(t, rclgo.ValidateTopicName(name), name)
	}
}

func TestExpandTopicName(t *testing.T) {
	tests := []struct {
		name, node, ns string
		want           string
	}{
		{"chatter", "talker", "/", "/chatter"},
		{"chatter", "talker", "/demo", "/demo/chatter"},
		{"rel/sub", "talker", "/demo", "/demo/rel/sub"},
		{"/absolute", "talker", "/demo", "/absolute"},
		{"~", "talker", "/demo", "/demo/talker"},
		{"~/status", "talker", "/demo", "/demo/talker/status"},
		{"~/status", "talker", "/", "/talker/status"},
		{"{node}/status", "talker", "/", "/talker/status"},
		{"{ns}/x", "talker", "/demo", "/demo/x"},
		{"{ns}/x", "talker", "/", "/x"},
		{"{namespace}/y", "talker", "/demo", "/demo/y"},
	}
	for _, tt := range tests {
		got, err := rclgo.ExpandTopicName(tt.name, tt.node, tt.ns)
		require.NoError(t, err, "%s in %s for %s", tt.name, tt.ns, tt.node)
		assert.Equal(t, tt.want, got, "%s in %s for %s", tt.name, tt.ns, tt.node)
	}
}

func TestExpandTopicNameErrors(t *testing.T) {
	_, err := rclgo.ExpandTopicName("", "talker", "/")
	assert.Error(t, err)

	_, err = rclgo.ExpandTopicName("chatter", "9bad", "/")
	assert.Error(t, err)

	_, err = rclgo.ExpandTopicName("chatter", "talker", "relative")
	assert.Error(t, err)
}

func TestFullyQualifiedNodeName(t *testing.T) {
	assert.Equal(t, "/talker", rclgo.FullyQualifiedNodeName("/", "talker"))
	assert.Equal(t, "/talker", rclgo.FullyQualifiedNodeName("", "talker"))
	assert.Equal(t, "/demo/talker", rclgo.FullyQualifiedNodeName("/demo", "talker"))
}
