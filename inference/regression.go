package inference

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gotd/td/bin"
	jsoniter "github.com/json-iterator/go"

	"github.com/tdakkota/inferconf/version"
)

const RegressionName = "regression"

// RegressionConfig configures result of regression model inference.
// It has no options.
type RegressionConfig struct{}

var EmptyRegressionParams = RegressionConfig{}

// RegressionConfigFromMap parses config from request options. Any key is an error.
func RegressionConfigFromMap(m map[string]interface{}) (RegressionConfig, error) {
	var opts struct{}
	if err := decodeOptions(m, &opts); err != nil {
		return RegressionConfig{}, err
	}
	return EmptyRegressionParams, nil
}

func DecodeRegressionConfig(b *bin.Buffer) (RegressionConfig, error) {
	var c RegressionConfig
	if err := c.Decode(b); err != nil {
		return RegressionConfig{}, err
	}
	return c, nil
}

// Encode implements bin.Encoder. Regression config has empty body.
func (c RegressionConfig) Encode(b *bin.Buffer) error {
	return nil
}

// Decode implements bin.Decoder.
func (c *RegressionConfig) Decode(b *bin.Buffer) error {
	return nil
}

func (c RegressionConfig) WriteJSON(s *jsoniter.Stream) {
	s.WriteEmptyObject()
}

// MarshalJSON implements json.Marshaler.
func (c RegressionConfig) MarshalJSON() ([]byte, error) {
	return marshalJSON(c.WriteJSON)
}

func (c RegressionConfig) Equal(other Config) bool {
	_, ok := other.(RegressionConfig)
	return ok
}

func (c RegressionConfig) Hash() uint64 {
	return xxhash.Sum64String(RegressionName)
}

func (c RegressionConfig) Name() string {
	return RegressionName
}

func (c RegressionConfig) WriteableName() string {
	return RegressionName
}

func (c RegressionConfig) TargetTypeSupported(t TargetType) bool {
	return t == Regression
}

func (c RegressionConfig) MinimalSupportedVersion() version.Version {
	return version.V7_6_0
}

func (c RegressionConfig) inferenceConfig() {}
