package lval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	lval "github.com/lispy-run/lispy"
)

func TestFloatPrintHasAtLeastThreeDecimals(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1, "1.000"},
		{1.5, "1.500"},
		{1.25, "1.250"},
		{1.123456, "1.123456"},
		{-2, "-2.000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, lval.MakeFloat(tc.in).String())
	}
}

func TestIntegerPrint(t *testing.T) {
	assert.Equal(t, "42", lval.MakeInteger(42).String())
	assert.Equal(t, "-7", lval.MakeInteger(-7).String())
}

func TestAsFloatWidensInteger(t *testing.T) {
	assert.Equal(t, 3.0, lval.AsFloat(lval.MakeInteger(3)))
	assert.Equal(t, 3.5, lval.AsFloat(lval.MakeFloat(3.5)))
}
