package inference

import (
	"sort"

	"github.com/gotd/td/bin"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/xerrors"
)

type variant struct {
	fromMap func(m map[string]interface{}) (Config, error)
	decode  func(b *bin.Buffer) (Config, error)
}

var variants = map[string]variant{
	ClassificationName: {
		fromMap: func(m map[string]interface{}) (Config, error) {
			return ClassificationConfigFromMap(m)
		},
		decode: func(b *bin.Buffer) (Config, error) {
			return DecodeClassificationConfig(b)
		},
	},
	RegressionName: {
		fromMap: func(m map[string]interface{}) (Config, error) {
			return RegressionConfigFromMap(m)
		},
		decode: func(b *bin.Buffer) (Config, error) {
			return DecodeRegressionConfig(b)
		},
	},
}

// Names returns sorted names of all config variants.
func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseConfig parses options of config variant with given name.
func ParseConfig(name string, m map[string]interface{}) (Config, error) {
	v, ok := variants[name]
	if !ok {
		return nil, &UnknownConfigError{Name: name}
	}

	cfg, err := v.fromMap(m)
	if err != nil {
		return nil, xerrors.Errorf("parse %s config: %w", name, err)
	}
	return cfg, nil
}

// ParseNamedMap parses wrapped form like
//
//	{"classification": {"num_top_classes": 2}}
//
// Wrapper must have exactly one key. Null body is the same as empty one.
func ParseNamedMap(m map[string]interface{}) (Config, error) {
	if len(m) != 1 {
		return nil, xerrors.Errorf("expected exactly one config, got %d: %w", len(m), ErrInvalidRequest)
	}

	var (
		name string
		body interface{}
	)
	for name, body = range m {
	}

	opts, err := bodyOptions(name, body)
	if err != nil {
		return nil, err
	}
	return ParseConfig(name, opts)
}

// bodyOptions converts config body. YAML decoders produce map[interface{}]interface{}.
func bodyOptions(name string, body interface{}) (map[string]interface{}, error) {
	switch b := body.(type) {
	case nil:
		return map[string]interface{}{}, nil
	case map[string]interface{}:
		return b, nil
	case map[interface{}]interface{}:
		r := make(map[string]interface{}, len(b))
		for k, v := range b {
			key, ok := k.(string)
			if !ok {
				return nil, &FieldTypeError{Field: name, Want: "an object with string keys", Value: body}
			}
			r[key] = v
		}
		return r, nil
	default:
		return nil, &FieldTypeError{Field: name, Want: "an object", Value: body}
	}
}

// EncodeNamed writes config name and then config itself. Nothing is written on error.
func EncodeNamed(b *bin.Buffer, cfg Config) error {
	name := cfg.WriteableName()
	start := len(b.Buf)
	b.PutString(name)
	if err := cfg.Encode(b); err != nil {
		b.Buf = b.Buf[:start]
		return xerrors.Errorf("encode %s: %w", name, err)
	}
	return nil
}

// DecodeNamed reads config written by EncodeNamed.
func DecodeNamed(b *bin.Buffer) (Config, error) {
	name, err := b.String()
	if err != nil {
		return nil, xerrors.Errorf("decode config name: %w", err)
	}

	v, ok := variants[name]
	if !ok {
		return nil, &UnknownConfigError{Name: name}
	}

	cfg, err := v.decode(b)
	if err != nil {
		return nil, xerrors.Errorf("decode %s: %w", name, err)
	}
	return cfg, nil
}

// MarshalNamedJSON writes config wrapped into object keyed by its name.
func MarshalNamedJSON(cfg Config) ([]byte, error) {
	return marshalJSON(func(s *jsoniter.Stream) {
		s.WriteObjectStart()
		s.WriteObjectField(cfg.Name())
		cfg.WriteJSON(s)
		s.WriteObjectEnd()
	})
}
