package inference

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gotd/td/bin"
	"github.com/stretchr/testify/require"
)

func TestRegressionConfig(t *testing.T) {
	a := require.New(t)

	c, err := RegressionConfigFromMap(nil)
	a.NoError(err)
	a.True(c.Equal(EmptyRegressionParams))
	a.Equal(EmptyRegressionParams.Hash(), c.Hash())
	a.False(c.Equal(EmptyClassificationParams))
	a.NotEqual(EmptyClassificationParams.Hash(), c.Hash())

	a.Equal("regression", c.Name())
	a.Equal("regression", c.WriteableName())
	a.True(c.TargetTypeSupported(Regression))
	a.False(c.TargetTypeSupported(Classification))

	data, err := json.Marshal(c)
	a.NoError(err)
	a.Equal(`{}`, string(data))

	b := bin.Buffer{}
	a.NoError(c.Encode(&b))
	a.Empty(b.Buf)
	decoded, err := DecodeRegressionConfig(&b)
	a.NoError(err)
	a.Equal(c, decoded)
}

func TestRegressionConfigFromMapRejectsOptions(t *testing.T) {
	_, err := RegressionConfigFromMap(map[string]interface{}{
		NumTopClassesField: 1,
	})
	require.True(t, errors.Is(err, ErrInvalidRequest))

	var unrecognized *UnrecognizedFieldsError
	require.True(t, errors.As(err, &unrecognized))
	require.Equal(t, []string{NumTopClassesField}, unrecognized.Fields)
}
