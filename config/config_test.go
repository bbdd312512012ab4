package config

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Run("no zero fields", func(t *testing.T) {
		for _, field := range zeroFields(reflect.ValueOf(*Default()), "Config") {
			assert.Fail(t, "zero-value field", field)
		}
	})

	t.Run("spaces are ordered", func(t *testing.T) {
		cfg := Default()
		require.LessOrEqual(t, cfg.Headers.Space.Default, cfg.Headers.Space.Maximal)
		require.LessOrEqual(t, cfg.Body.Space.Default, cfg.Body.Space.Maximal)
	})

	t.Run("independent instances", func(t *testing.T) {
		a, b := Default(), Default()
		a.Boundary.MaxLength = 1
		require.Equal(t, 70, b.Boundary.MaxLength)
	})
}

func zeroFields(v reflect.Value, name string) (fields []string) {
	if v.Kind() == reflect.Struct {
		for i := range v.NumField() {
			fields = append(fields, zeroFields(v.Field(i), name+"."+v.Type().Field(i).Name)...)
		}

		return fields
	}

	if v.IsZero() {
		return []string{name}
	}

	return nil
}
