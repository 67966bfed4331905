package scalar_test

import (
	"errors"
	"testing"

	"github.com/aretw0/scalarguard/pkg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_NilTagAlwaysPasses(t *testing.T) {
	values := []any{nil, 5, "a", []int{1}, struct{}{}, func() {}}
	for _, v := range values {
		spec := scalar.NewTypeSpec().Field("x", nil)
		res, err := scalar.Check(scalar.NamedParams(map[string]any{"x": v}), spec, scalar.Options{})
		require.NoError(t, err)
		assert.True(t, res.OK(), "value %#v", v)
	}
}

func TestCheck_AllowNull(t *testing.T) {
	for _, k := range scalar.Kinds() {
		spec := scalar.NewTypeSpec().Field("absent", k.String()).Field("null", k.String())
		params := scalar.NamedParams(map[string]any{"null": nil})

		res, err := scalar.Check(params, spec, scalar.DefaultOptions())
		require.NoError(t, err)
		assert.True(t, res.OK(), "kind %s", k)
	}
}

func TestCheck_DisallowNull(t *testing.T) {
	for _, soft := range []bool{false, true} {
		for _, k := range scalar.Kinds() {
			spec := scalar.NewTypeSpec().Field("absent", k.String())
			opts := scalar.Options{AllowNull: false, SoftNumeric: soft}

			res, err := scalar.Check(scalar.Params{}, spec, opts)
			require.NoError(t, err)

			if k == scalar.KindNull {
				assert.True(t, res.OK(), "kind %s soft=%v", k, soft)
				continue
			}
			require.Len(t, res.Failures, 1, "kind %s soft=%v", k, soft)
			f := res.Failures[0]
			assert.Equal(t, scalar.Name("absent"), f.Key)
			assert.Equal(t, "null", f.Given)
			assert.Nil(t, f.Value)
		}
	}
}

func TestCheck_UnsetAlias(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("x", "unset")
	res, err := scalar.Check(scalar.NamedParams(map[string]any{"x": 1}), spec, scalar.Options{})
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, scalar.KindNull, res.Failures[0].Kind)
	assert.Equal(t, "unset", res.Failures[0].Tag)
}

func TestCheck_TagIsCaseInsensitive(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("x", "INT").Field("y", "String")
	params := scalar.NamedParams(map[string]any{"x": 1, "y": 2})

	res, err := scalar.Check(params, spec, scalar.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "string", res.Failures[0].Tag)
	assert.Equal(t, "int", res.Failures[0].Given)
}

func TestCheck_CollectsAllFailuresInSpecOrder(t *testing.T) {
	spec := scalar.Positional("string", "int", nil, "bool")
	params := scalar.Args(1, "two", 3, "four")

	res, err := scalar.Check(params, spec, scalar.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Failures, 3)
	assert.Equal(t, scalar.Index(0), res.Failures[0].Key)
	assert.Equal(t, scalar.Index(1), res.Failures[1].Key)
	assert.Equal(t, scalar.Index(3), res.Failures[2].Key)
}

func TestCheck_ConfigErrors(t *testing.T) {
	t.Run("Non-string tag", func(t *testing.T) {
		spec := scalar.NewTypeSpec().Field("x", 5)
		_, err := scalar.Check(scalar.Params{}, spec, scalar.DefaultOptions())

		var cfgErr *scalar.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, scalar.Name("x"), cfgErr.Key)
		assert.Equal(t, "Scalar Enforce Call-Error: Unexpected 'int', expected String or NULL.", err.Error())
		assert.True(t, errors.Is(err, scalar.ErrConfig))
	})

	t.Run("Unrecognized tag after a failing key", func(t *testing.T) {
		spec := scalar.NewTypeSpec().Field("x", "string").Field("y", "badtype")
		params := scalar.NamedParams(map[string]any{"x": 1, "y": 2})

		res, err := scalar.Check(params, spec, scalar.DefaultOptions())
		var cfgErr *scalar.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, scalar.Name("y"), cfgErr.Key)
		assert.Equal(t, "Scalar Enforce Call-Error: Unrecognized Scalar Type 'badtype'.", err.Error())
		assert.True(t, res.OK(), "no partial result on config error")
	})

	t.Run("Non-string tag on an absent value", func(t *testing.T) {
		spec := scalar.NewTypeSpec().Field("x", true)
		_, err := scalar.Check(scalar.Params{}, spec, scalar.DefaultOptions())
		assert.ErrorIs(t, err, scalar.ErrConfig)
	})
}

func TestCheck_UnrecognizedTagOnNull(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("x", "Bogus")

	tests := []struct {
		name   string
		params scalar.Params
	}{
		{"Absent", scalar.Params{}},
		{"Nil", scalar.NamedParams(map[string]any{"x": nil})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := scalar.Check(tt.params, spec, scalar.DefaultOptions())
			require.NoError(t, err)
			assert.True(t, res.OK())

			ok, err := scalar.New().Validate(tt.params, spec, nil)
			require.NoError(t, err)
			assert.True(t, ok)

			_, err = scalar.Check(tt.params, spec, scalar.Options{AllowNull: false})
			assert.ErrorIs(t, err, scalar.ErrConfig)
			assert.Contains(t, err.Error(), "'bogus'")
		})
	}
}

func TestCheck_NilSpec(t *testing.T) {
	res, err := scalar.Check(scalar.Args(1), nil, scalar.Options{})
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.NoError(t, res.Err())
}

func TestResult_Err(t *testing.T) {
	spec := scalar.NewTypeSpec().Field("x", "int").Field("y", "int")
	params := scalar.NamedParams(map[string]any{"x": "a", "y": 1.5})

	res, err := scalar.Check(params, spec, scalar.DefaultOptions())
	require.NoError(t, err)

	verr := res.Err()
	require.Error(t, verr)
	assert.ErrorIs(t, verr, scalar.ErrValidation)
	assert.Len(t, scalar.ValidationErrors(verr), 2)
	assert.Contains(t, verr.Error(), "2 validation errors")
	assert.Contains(t, verr.Error(), "Expected scalar type 'int' for index 'x', 'string' given.")
	assert.Contains(t, verr.Error(), "Expected scalar type 'int' for index 'y', 'float64' given.")
}
