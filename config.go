package rclgo

import (
	"encoding/json"
	"fmt"
)

// VendorConfig is an opaque JSON blob carrying transport-specific tuning,
// e.g. loaded from a launch description. Vendor payloads Decode() it into
// their own strongly typed options.
type VendorConfig struct {
	raw json.RawMessage
}

func NewVendorConfig(raw []byte) VendorConfig { return VendorConfig{raw: raw} }

func (c VendorConfig) Raw() []byte { return c.raw }

func (c VendorConfig) Decode(v any) error {
	if len(c.raw) == 0 {
		return fmt.Errorf("empty vendor config")
	}
	return json.Unmarshal(c.raw, v)
}
