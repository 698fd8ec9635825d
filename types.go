package rclgo

import (
	"time"

	"github.com/google/uuid"
)

// GID is the globally unique identifier of a middleware entity (node,
// publisher, or subscription).
type GID uuid.UUID

// NewGID returns a fresh random GID.
func NewGID() GID { return GID(uuid.New()) }

func (g GID) String() string { return uuid.UUID(g).String() }

// IsZero reports whether the GID is unset.
func (g GID) IsZero() bool { return uuid.UUID(g) == uuid.Nil }

// Message is a single sample received on a topic.
type Message struct {
	// Topic is the fully qualified, remapped topic name.
	Topic string
	// Data is the serialized payload. Serialization is owned by the caller.
	Data []byte
	// Publisher identifies the publishing entity when the transport knows it.
	Publisher GID
	// Received is when the transport handed the sample to this process.
	Received time.Time
}
