package inference

import (
	"strings"
)

// TargetType is the kind of prediction task a model performs.
type TargetType int

const (
	Classification TargetType = iota + 1
	Regression
)

// TargetTypes lists every known target type.
var TargetTypes = []TargetType{Classification, Regression}

func (t TargetType) String() string {
	switch t {
	case Classification:
		return "classification"
	case Regression:
		return "regression"
	default:
		return "unknown"
	}
}

// ParseTargetType parses target type name, ignoring case.
func ParseTargetType(s string) (TargetType, error) {
	for _, t := range TargetTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, &UnknownTargetTypeError{Name: s}
}
