// Package inference contains inference result configs of trained models.
//
// Config is a closed set of variants: ClassificationConfig and RegressionConfig.
// Each variant has a binary form (gotd/td bin encoding) and a JSON form, and is
// selected by its name when parsed or decoded.
package inference

import (
	"github.com/gotd/td/bin"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/xerrors"

	"github.com/tdakkota/inferconf/version"
)

// Config is an inference result config.
type Config interface {
	bin.Encoder

	// Name is a name used in request bodies.
	Name() string
	// WriteableName is a name used in binary envelope.
	WriteableName() string
	TargetTypeSupported(t TargetType) bool
	// MinimalSupportedVersion is the oldest peer version which understands this config.
	MinimalSupportedVersion() version.Version

	Equal(other Config) bool
	Hash() uint64

	// WriteJSON writes config as JSON object.
	WriteJSON(s *jsoniter.Stream)

	inferenceConfig()
}

// maxStringLen is the longest string bin.Buffer.PutString can length-prefix.
const maxStringLen = 1<<24 - 1

func checkStringLen(field, s string) error {
	if n := len(s); n > maxStringLen {
		return xerrors.Errorf("encode %s: string too long (%d bytes)", field, n)
	}
	return nil
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

func marshalJSON(write func(s *jsoniter.Stream)) ([]byte, error) {
	s := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(s)

	write(s)
	if s.Error != nil {
		return nil, s.Error
	}
	return append([]byte(nil), s.Buffer()...), nil
}
