// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless micro-level operations
// for formatting JSON primitives.
package jsonwire

import (
	"math"
	"slices"
	"strconv"
)

// MinInt64Digits is the decimal rendering of math.MinInt64,
// whose magnitude cannot be produced by negation without overflow.
const MinInt64Digits = "-9223372036854775808"

const (
	// MaxFloat64Len bounds AppendFloat output for 64-bit values:
	// a sign, up to 17 significant digits, a decimal point, and an
	// exponent with its own sign and digits, or the quoted non-finite
	// forms ("-Infinity" being the longest).
	MaxFloat64Len = 32
	// MaxFloat32Len likewise for 32-bit values (9 significant digits).
	MaxFloat32Len = 24
)

// DecimalLen returns the number of decimal digits needed to format u.
// A comparison ladder over powers of ten sizes the capacity check
// exactly without performing per-digit division twice.
func DecimalLen(u uint64) int {
	switch {
	case u < 1e1:
		return 1
	case u < 1e2:
		return 2
	case u < 1e3:
		return 3
	case u < 1e4:
		return 4
	case u < 1e5:
		return 5
	case u < 1e6:
		return 6
	case u < 1e7:
		return 7
	case u < 1e8:
		return 8
	case u < 1e9:
		return 9
	case u < 1e10:
		return 10
	case u < 1e11:
		return 11
	case u < 1e12:
		return 12
	case u < 1e13:
		return 13
	case u < 1e14:
		return 14
	case u < 1e15:
		return 15
	case u < 1e16:
		return 16
	case u < 1e17:
		return 17
	case u < 1e18:
		return 18
	case u < 1e19:
		return 19
	default:
		return 20
	}
}

// AppendDecimal appends the decimal digits of u to dst.
// Digits are written right to left into the grown region by successive
// division, so no reversal pass is needed afterwards.
func AppendDecimal(dst []byte, u uint64) []byte {
	if u < 10 {
		return append(dst, byte('0'+u))
	}
	n := DecimalLen(u)
	dst = slices.Grow(dst, n)
	dst = dst[:len(dst)+n]
	for i := len(dst) - 1; u > 0; i-- {
		dst[i] = byte('0' + u%10)
		u /= 10
	}
	return dst
}

// AppendFloat appends src to dst as a JSON number per RFC 7159, section 6.
// It formats numbers similar to the ES6 number-to-string conversion,
// producing the shortest form that parses back to the same value.
//
// Non-finite values have no JSON number form and are rendered as the
// quoted strings "NaN", "Infinity", and "-Infinity" instead.
//
// For 32-bit floating-point numbers,
// the output is a 32-bit equivalent of the algorithm.
// Note that ECMA-262 specifies no algorithm for 32-bit numbers.
func AppendFloat(dst []byte, src float64, bits int) []byte {
	if bits == 32 {
		src = float64(float32(src))
	}

	switch {
	case math.IsNaN(src):
		return append(dst, `"NaN"`...)
	case math.IsInf(src, +1):
		return append(dst, `"Infinity"`...)
	case math.IsInf(src, -1):
		return append(dst, `"-Infinity"`...)
	}

	abs := math.Abs(src)
	fmt := byte('f')
	if abs != 0 {
		if bits == 64 && (float64(abs) < 1e-6 || float64(abs) >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	dst = strconv.AppendFloat(dst, src, fmt, -1, bits)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
