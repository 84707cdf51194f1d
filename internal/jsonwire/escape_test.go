// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestEscapeTable rebuilds the classification table from first principles
// and checks the hand-written table against it.
func TestEscapeTable(t *testing.T) {
	var want [len(escapeASCII)]int8
	for c := 0; c < ' '; c++ {
		want[c] = +1
	}
	for _, c := range []byte{'\b', '\f', '\n', '\r', '\t', '"', '\\'} {
		want[c] = -1
	}
	require.Equal(t, want, escapeASCII)
}

func TestAppendEscapedASCII(t *testing.T) {
	tests := []struct {
		in   byte
		want string
	}{
		{'"', `\"`},
		{'\\', `\\`},
		{'\b', `\b`},
		{'\f', `\f`},
		{'\n', `\n`},
		{'\r', `\r`},
		{'\t', `\t`},
		{0x00, `\u0000`},
		{0x0b, `\u000b`},
		{0x1f, `\u001f`},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			got := AppendEscapedASCII(nil, tt.in)
			require.Equal(t, tt.want, string(got))
			require.Len(t, got, EscapedLen(tt.in))
		})
	}
}

func TestAppendEscapedUTF16(t *testing.T) {
	require.Equal(t, `\u0000`, string(AppendEscapedUTF16(nil, 0x0000)))
	require.Equal(t, `\u001f`, string(AppendEscapedUTF16(nil, 0x001f)))
	require.Equal(t, `\uf0f0`, string(AppendEscapedUTF16(nil, 0xf0f0)))
	require.Equal(t, `\uffff`, string(AppendEscapedUTF16(nil, 0xffff)))
}
