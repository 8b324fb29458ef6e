// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitLiteralForms(t *testing.T) {
	cases := []struct {
		name   string
		length int
		hdr    int
	}{
		{"short", 1, 1},
		{"short-max", 60, 1},
		{"one-byte-len", 61, 2},
		{"one-byte-len-max", 1 << 8, 2},
		{"two-byte-len", 1<<8 + 1, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lit := make([]byte, c.length)
			for i := range lit {
				lit[i] = byte(i)
			}
			dst := make([]byte, c.length+5)
			n := emitLiteral(dst, lit)
			require.Equal(t, c.hdr+c.length, n)

			tag, ok := parseTag(dst, 0)
			require.True(t, ok)
			require.Equal(t, byte(tagLiteral), tag.kind)
			require.Equal(t, c.length, tag.length)
			require.Equal(t, c.hdr, tag.hdrLen)
			require.Equal(t, lit, dst[c.hdr:c.hdr+c.length])
		})
	}
}

func TestEmitCopyShortForm(t *testing.T) {
	dst := make([]byte, 8)
	n := emitCopy(dst, 8, 8)
	require.Equal(t, 2, n) // offset < 2048 and length < 12: tagCopy1

	tag, ok := parseTag(dst, 0)
	require.True(t, ok)
	require.Equal(t, byte(tagCopy1), tag.kind)
	require.Equal(t, 8, tag.length)
	require.Equal(t, 8, tag.offset)
}

func TestEmitCopyLongOffset(t *testing.T) {
	dst := make([]byte, 8)
	n := emitCopy(dst, 3000, 6)
	require.Equal(t, 3, n) // offset >= 2048: tagCopy2

	tag, ok := parseTag(dst, 0)
	require.True(t, ok)
	require.Equal(t, byte(tagCopy2), tag.kind)
	require.Equal(t, 6, tag.length)
	require.Equal(t, 3000, tag.offset)
}

func TestEmitCopyChunking(t *testing.T) {
	// A length-200 copy must be split into 64-byte tagCopy2 chunks
	// followed by a remainder, matching the C++ reference encoder's
	// chunking exactly (see SPEC_FULL.md's resolution of the merged-
	// chunk Open Question).
	dst := make([]byte, 32)
	n := emitCopy(dst, 100, 200)

	ip := 0
	total := 0
	var chunks []decodedTag
	for ip < n {
		tag, ok := parseTag(dst, ip)
		require.True(t, ok)
		chunks = append(chunks, tag)
		total += tag.length
		ip += tag.hdrLen
	}
	require.Equal(t, 200, total)
	require.Len(t, chunks, 4) // 64 + 64 + 64 + 8
	for _, c := range chunks[:3] {
		require.Equal(t, byte(tagCopy2), c.kind)
	}
}

func TestParseTagTruncated(t *testing.T) {
	cases := [][]byte{
		{60<<2 | tagLiteral},         // needs 1 more byte
		{61<<2 | tagLiteral, 0x00},   // needs 2 more bytes
		{tagCopy1},                   // needs 1 more byte
		{tagCopy2, 0x00},             // needs 2 more bytes
		{tagCopy4, 0x00, 0x00, 0x00}, // needs 4 more bytes
	}
	for _, src := range cases {
		_, ok := parseTag(src, 0)
		require.False(t, ok, "%v", src)
	}
}

func TestParseTagCopy4(t *testing.T) {
	dst := make([]byte, 5)
	n := emitCopy4(dst, 1<<20, 10)
	require.Equal(t, 5, n)

	tag, ok := parseTag(dst, 0)
	require.True(t, ok)
	require.Equal(t, byte(tagCopy4), tag.kind)
	require.Equal(t, 10, tag.length)
	require.Equal(t, 1<<20, tag.offset)
}
