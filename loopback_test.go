package rclgo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crystaldust/rclgo"
)

func TestLoopbackDeliversToMatchingTopicOnly(t *testing.T) {
	lb := rclgo.NewLoopbackTransport()

	var got []rclgo.Message
	_, err := lb.CreateSubscription(context.Background(), "/a", rclgo.TransportSubscriptionOptions{},
		func(msg rclgo.Message) { got = append(got, msg) })
	require.NoError(t, err)

	pubA, err := lb.CreatePublisher(context.Background(), "/a")
	require.NoError(t, err)
	pubB, err := lb.CreatePublisher(context.Background(), "/b")
	require.NoError(t, err)

	require.NoError(t, pubA.Publish(context.Background(), []byte("one")))
	require.NoError(t, pubB.Publish(context.Background(), []byte("two")))

	require.Len(t, got, 1)
	assert.Equal(t, "/a", got[0].Topic)
	assert.Equal(t, []byte("one"), got[0].Data)
	assert.Equal(t, pubA.GID(), got[0].Publisher)
	assert.False(t, got[0].Received.IsZero())
}

func TestLoopbackSubscriptionClose(t *testing.T) {
	lb := rclgo.NewLoopbackTransport()

	var count int
	sub, err := lb.CreateSubscription(context.Background(), "/a", rclgo.TransportSubscriptionOptions{},
		func(rclgo.Message) { count++ })
	require.NoError(t, err)

	pub, err := lb.CreatePublisher(context.Background(), "/a")
	require.NoError(t, err)

	require.NoError(t, pub.Publish(context.Background(), nil))
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close(), "close is idempotent")
	require.NoError(t, pub.Publish(context.Background(), nil))

	assert.Equal(t, 1, count)
}

func TestLoopbackClosedTransport(t *testing.T) {
	lb := rclgo.NewLoopbackTransport()
	pub, err := lb.CreatePublisher(context.Background(), "/a")
	require.NoError(t, err)

	require.NoError(t, lb.Close())

	_, err = lb.CreatePublisher(context.Background(), "/a")
	assert.ErrorIs(t, err, rclgo.ErrTransportClosed)

	_, err = lb.CreateSubscription(context.Background(), "/a", rclgo.TransportSubscriptionOptions{}, func(rclgo.Message) {})
	assert.ErrorIs(t, err, rclgo.ErrTransportClosed)

	assert.ErrorIs(t, pub.Publish(context.Background(), nil), rclgo.ErrTransportClosed)
}

func TestLoopbackPublishHonorsContext(t *testing.T) {
	lb := rclgo.NewLoopbackTransport()
	pub, err := lb.CreatePublisher(context.Background(), "/a")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, pub.Publish(ctx, nil), context.Canceled)
}
