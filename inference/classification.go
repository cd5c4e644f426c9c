package inference

import (
	"github.com/cespare/xxhash/v2"
	"github.com/gotd/td/bin"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/xerrors"

	"github.com/tdakkota/inferconf/version"
)

const (
	ClassificationName = "classification"

	DefaultTopClassesResultField = "top_classes"

	NumTopClassesField         = "num_top_classes"
	TopClassesResultFieldField = "top_classes_result_field"
)

// ClassificationConfig configures result of classification model inference.
type ClassificationConfig struct {
	// immutable
	numTopClasses         int32
	topClassesResultField string
}

// EmptyClassificationParams is config with all defaults.
var EmptyClassificationParams = NewClassificationConfig(nil, nil)

// NewClassificationConfig creates new ClassificationConfig.
// Nil arguments are replaced with defaults.
func NewClassificationConfig(numTopClasses *int32, topClassesResultField *string) ClassificationConfig {
	c := ClassificationConfig{
		topClassesResultField: DefaultTopClassesResultField,
	}
	if numTopClasses != nil {
		c.numTopClasses = *numTopClasses
	}
	if topClassesResultField != nil {
		c.topClassesResultField = *topClassesResultField
	}
	return c
}

// NewClassificationConfigN creates new ClassificationConfig with default result field.
func NewClassificationConfigN(numTopClasses int32) ClassificationConfig {
	return NewClassificationConfig(&numTopClasses, nil)
}

type classificationOptions struct {
	NumTopClasses         *int32  `mapstructure:"num_top_classes"`
	TopClassesResultField *string `mapstructure:"top_classes_result_field"`
}

// ClassificationConfigFromMap parses config from request options.
func ClassificationConfigFromMap(m map[string]interface{}) (ClassificationConfig, error) {
	var opts classificationOptions
	if err := decodeOptions(m, &opts); err != nil {
		return ClassificationConfig{}, err
	}

	return NewClassificationConfig(opts.NumTopClasses, opts.TopClassesResultField), nil
}

// DecodeClassificationConfig decodes ClassificationConfig from b.
func DecodeClassificationConfig(b *bin.Buffer) (ClassificationConfig, error) {
	var c ClassificationConfig
	if err := c.Decode(b); err != nil {
		return ClassificationConfig{}, err
	}
	return c, nil
}

// NumTopClasses returns number of top classes to return. Zero means no top classes.
func (c ClassificationConfig) NumTopClasses() int32 {
	return c.numTopClasses
}

func (c ClassificationConfig) TopClassesResultField() string {
	return c.topClassesResultField
}

// Encode implements bin.Encoder. Nothing is written on error.
func (c ClassificationConfig) Encode(b *bin.Buffer) error {
	if err := checkStringLen(TopClassesResultFieldField, c.topClassesResultField); err != nil {
		return err
	}

	b.PutInt32(c.numTopClasses)
	b.PutString(c.topClassesResultField)
	return nil
}

// Decode implements bin.Decoder. Config is unchanged on error.
func (c *ClassificationConfig) Decode(b *bin.Buffer) error {
	numTopClasses, err := b.Int32()
	if err != nil {
		return xerrors.Errorf("decode %s: %w", NumTopClassesField, err)
	}
	field, err := b.String()
	if err != nil {
		return xerrors.Errorf("decode %s: %w", TopClassesResultFieldField, err)
	}

	c.numTopClasses = numTopClasses
	c.topClassesResultField = field
	return nil
}

// WriteJSON writes config as JSON object. num_top_classes is omitted when zero,
// unlike binary form.
func (c ClassificationConfig) WriteJSON(s *jsoniter.Stream) {
	s.WriteObjectStart()
	if c.numTopClasses != 0 {
		s.WriteObjectField(NumTopClassesField)
		s.WriteInt32(c.numTopClasses)
		s.WriteMore()
	}
	s.WriteObjectField(TopClassesResultFieldField)
	s.WriteString(c.topClassesResultField)
	s.WriteObjectEnd()
}

// MarshalJSON implements json.Marshaler.
func (c ClassificationConfig) MarshalJSON() ([]byte, error) {
	return marshalJSON(c.WriteJSON)
}

func (c ClassificationConfig) Equal(other Config) bool {
	o, ok := other.(ClassificationConfig)
	return ok && o == c
}

func (c ClassificationConfig) Hash() uint64 {
	var n bin.Buffer
	n.PutInt32(c.numTopClasses)

	d := xxhash.New()
	// Digest writes never fail.
	_, _ = d.WriteString(ClassificationName)
	_, _ = d.Write(n.Buf)
	_, _ = d.WriteString(c.topClassesResultField)
	return d.Sum64()
}

func (c ClassificationConfig) Name() string {
	return ClassificationName
}

func (c ClassificationConfig) WriteableName() string {
	return ClassificationName
}

func (c ClassificationConfig) TargetTypeSupported(t TargetType) bool {
	return t == Classification
}

func (c ClassificationConfig) MinimalSupportedVersion() version.Version {
	return version.V7_6_0
}

func (c ClassificationConfig) inferenceConfig() {}
