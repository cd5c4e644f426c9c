package inference

import (
	"errors"
	"testing"

	"github.com/gotd/td/bin"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	require.Equal(t, []string{ClassificationName, RegressionName}, Names())
}

func TestParseConfig(t *testing.T) {
	a := require.New(t)

	cfg, err := ParseConfig(ClassificationName, map[string]interface{}{
		NumTopClassesField: 3,
	})
	a.NoError(err)
	a.Equal(NewClassificationConfigN(3), cfg)

	cfg, err = ParseConfig(RegressionName, nil)
	a.NoError(err)
	a.Equal(EmptyRegressionParams, cfg)

	_, err = ParseConfig(ClassificationName, map[string]interface{}{
		NumTopClassesField: 3,
		"bogus":            1,
	})
	var unrecognized *UnrecognizedFieldsError
	a.True(errors.As(err, &unrecognized))
	a.Equal([]string{"bogus"}, unrecognized.Fields)

	_, err = ParseConfig("clustering", nil)
	var unknown *UnknownConfigError
	a.True(errors.As(err, &unknown))
	a.Equal("clustering", unknown.Name)
	a.True(errors.Is(err, ErrInvalidRequest))
}

func TestParseNamedMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
		want Config
	}{
		{"Classification", map[string]interface{}{
			"classification": map[string]interface{}{NumTopClassesField: 2},
		}, NewClassificationConfigN(2)},
		{"YAMLBody", map[string]interface{}{
			"classification": map[interface{}]interface{}{TopClassesResultFieldField: "best"},
		}, NewClassificationConfig(nil, strPtr("best"))},
		{"NullBody", map[string]interface{}{
			"regression": nil,
		}, EmptyRegressionParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseNamedMap(tt.in)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(cfg))
		})
	}
}

func TestParseNamedMapInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]interface{}
	}{
		{"Empty", map[string]interface{}{}},
		{"TwoKeys", map[string]interface{}{"classification": nil, "regression": nil}},
		{"Unknown", map[string]interface{}{"clustering": nil}},
		{"ScalarBody", map[string]interface{}{"classification": 1}},
		{"NonStringKey", map[string]interface{}{
			"classification": map[interface{}]interface{}{1: 2},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNamedMap(tt.in)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestNamedBinary(t *testing.T) {
	for _, cfg := range []Config{
		EmptyClassificationParams,
		NewClassificationConfig(int32Ptr(4), strPtr("classes")),
		EmptyRegressionParams,
	} {
		t.Run(cfg.Name(), func(t *testing.T) {
			b := bin.Buffer{}
			require.NoError(t, EncodeNamed(&b, cfg))

			decoded, err := DecodeNamed(&b)
			require.NoError(t, err)
			require.True(t, cfg.Equal(decoded))
			require.Equal(t, cfg.Hash(), decoded.Hash())
			require.Empty(t, b.Buf)
		})
	}
}

func TestDecodeNamedInvalid(t *testing.T) {
	a := require.New(t)

	_, err := DecodeNamed(&bin.Buffer{})
	a.Error(err)

	b := bin.Buffer{}
	b.PutString("clustering")
	_, err = DecodeNamed(&b)
	var unknown *UnknownConfigError
	a.True(errors.As(err, &unknown))

	b = bin.Buffer{}
	b.PutString(ClassificationName)
	b.PutInt32(1)
	_, err = DecodeNamed(&b)
	a.Error(err)
}

func TestMarshalNamedJSON(t *testing.T) {
	a := require.New(t)

	data, err := MarshalNamedJSON(NewClassificationConfigN(3))
	a.NoError(err)
	a.JSONEq(`{"classification":{"num_top_classes":3,"top_classes_result_field":"top_classes"}}`, string(data))

	data, err = MarshalNamedJSON(EmptyRegressionParams)
	a.NoError(err)
	a.JSONEq(`{"regression":{}}`, string(data))
}
