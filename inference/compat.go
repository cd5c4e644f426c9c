package inference

import (
	"github.com/gotd/td/bin"

	"github.com/tdakkota/inferconf/version"
)

// CompatibleWith reports whether peer of given version understands cfg.
func CompatibleWith(cfg Config, peer version.Version) bool {
	return peer.OnOrAfter(cfg.MinimalSupportedVersion())
}

// CheckCompatible returns *IncompatibleVersionError if peer is older than
// cfg's minimal supported version.
func CheckCompatible(cfg Config, peer version.Version) error {
	if CompatibleWith(cfg, peer) {
		return nil
	}
	return &IncompatibleVersionError{
		Name:     cfg.WriteableName(),
		Required: cfg.MinimalSupportedVersion(),
		Peer:     peer,
	}
}

// EncodeNamedFor is like EncodeNamed, but refuses to encode config for older peer.
func EncodeNamedFor(b *bin.Buffer, cfg Config, peer version.Version) error {
	if err := CheckCompatible(cfg, peer); err != nil {
		return err
	}
	return EncodeNamed(b, cfg)
}
