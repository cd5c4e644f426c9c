package inference

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/xerrors"
)

// decodeOptions decodes request options into out, which is a pointer to struct
// with mapstructure tags. Nil and absent values leave fields untouched.
func decodeOptions(m map[string]interface{}, out interface{}) error {
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: checkInt32Range,
		Metadata:   &md,
		Result:     out,
		// Option names are case-sensitive.
		MatchName: func(mapKey, fieldName string) bool {
			return mapKey == fieldName
		},
	})
	if err != nil {
		return xerrors.Errorf("create options decoder: %w", err)
	}

	if err := dec.Decode(m); err != nil {
		return &OptionsError{Err: err}
	}
	if len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		return &UnrecognizedFieldsError{Fields: md.Unused}
	}
	return nil
}

// checkInt32Range rejects values which would be truncated when decoded into int32.
func checkInt32Range(from, to reflect.Type, data interface{}) (interface{}, error) {
	if to.Kind() != reflect.Int32 {
		return data, nil
	}

	outOfRange := fmt.Errorf("value %v is not an int32", data)
	if n, ok := data.(json.Number); ok {
		// Malformed numbers are reported by decoder.
		if v, err := n.Int64(); err == nil && (v < math.MinInt32 || v > math.MaxInt32) {
			return nil, outOfRange
		}
		return data, nil
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if x := v.Int(); x < math.MinInt32 || x > math.MaxInt32 {
			return nil, outOfRange
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > math.MaxInt32 {
			return nil, outOfRange
		}
	case reflect.Float32, reflect.Float64:
		if x := v.Float(); x != math.Trunc(x) || x < math.MinInt32 || x > math.MaxInt32 {
			return nil, outOfRange
		}
	}
	return data, nil
}
