// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// decimalBoundaries holds every power-of-ten boundary for uint64,
// where the digit count changes by one.
var decimalBoundaries = func() (vals []uint64) {
	for p := uint64(1); ; p *= 10 {
		vals = append(vals, p-1, p)
		if p > math.MaxUint64/10 {
			break
		}
	}
	return append(vals, math.MaxUint64)
}()

func TestDecimalLen(t *testing.T) {
	for _, u := range decimalBoundaries {
		require.Equal(t, len(strconv.FormatUint(u, 10)), DecimalLen(u), "u = %d", u)
	}
}

func TestAppendDecimal(t *testing.T) {
	vals := append([]uint64{0, 5, 42, 1024, 123456789}, decimalBoundaries...)
	for _, u := range vals {
		got := string(AppendDecimal(nil, u))
		require.Equal(t, strconv.FormatUint(u, 10), got)

		// The right-to-left fill must also work mid-buffer.
		got = string(AppendDecimal([]byte("x:"), u))
		require.Equal(t, "x:"+strconv.FormatUint(u, 10), got)
	}
}

func TestAppendFloat(t *testing.T) {
	tests := []struct {
		in   float64
		bits int
		want string
	}{
		{0, 64, "0"},
		{math.Copysign(0, -1), 64, "-0"},
		{1, 64, "1"},
		{-1024, 64, "-1024"},
		{3.14159, 64, "3.14159"},
		{1e20, 64, "100000000000000000000"},
		{1e21, 64, "1e+21"},
		{1e-6, 64, "0.000001"},
		{1e-7, 64, "1e-7"},
		{math.NaN(), 64, `"NaN"`},
		{math.Inf(+1), 64, `"Infinity"`},
		{math.Inf(-1), 64, `"-Infinity"`},
		{0.1, 32, "0.1"},
		{float64(math.MaxFloat32), 32, "3.4028235e+38"},
	}
	for _, tt := range tests {
		got := string(AppendFloat(nil, tt.in, tt.bits))
		require.Equal(t, tt.want, got, "AppendFloat(%v, %d)", tt.in, tt.bits)
		require.LessOrEqual(t, len(got), MaxFloat64Len)
	}
}

// TestAppendFloatRoundTrip checks that finite values parse back exactly.
func TestAppendFloatRoundTrip(t *testing.T) {
	vals := []float64{
		math.SmallestNonzeroFloat64, math.MaxFloat64,
		1.0 / 3.0, 2.2250738585072011e-308, 123456789.123456789,
	}
	for _, f := range vals {
		got, err := strconv.ParseFloat(string(AppendFloat(nil, f, 64)), 64)
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	for _, f := range []float32{math.MaxFloat32, 1.0 / 3.0, 0.1} {
		b := string(AppendFloat(nil, float64(f), 32))
		require.LessOrEqual(t, len(b), MaxFloat32Len)
		got, err := strconv.ParseFloat(b, 32)
		require.NoError(t, err)
		require.Equal(t, f, float32(got))
	}
}
