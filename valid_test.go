// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidAgreesWithDecompressOnGoodInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 5000; n += 91 {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(rng.Intn(4)) // heavily repetitive, exercises copies
		}
		dst := make([]byte, MaxEncodedLen(n))
		written, err := Compress(dst, src, Options{})
		require.NoError(t, err)
		compressed := dst[:written]

		require.True(t, Valid(compressed))

		out := make([]byte, n)
		_, err = Decompress(out, compressed)
		require.NoError(t, err)
		require.Equal(t, src, out)
	}
}

func TestValidRejectsMalformedVarint(t *testing.T) {
	require.False(t, Valid([]byte{0x80, 0x80, 0x80, 0x80, 0x80}))
}

func TestValidRejectsTruncatedTag(t *testing.T) {
	require.False(t, Valid([]byte{0x05, 60<<2 | tagLiteral, 4, 'a', 'b'}))
}

func TestValidRejectsBadOffset(t *testing.T) {
	compressed := []byte{
		0x02,
		0x00<<2 | tagLiteral, 'a',
		0x01, 0x02, // tagCopy1, length 4, offset 2 — but op is only 1
	}
	require.False(t, Valid(compressed))
}

func TestValidRejectsTrailingGarbage(t *testing.T) {
	compressed := []byte{
		0x01,
		0x00<<2 | tagLiteral, 'a',
		0xff,
	}
	require.False(t, Valid(compressed))
}

// TestDecoderNeverPanics throws arbitrary random bytes at Decompress
// and Valid and asserts neither panics nor reports success with a
// length outside [0, len(out)]. It is the safety property from
// SPEC_FULL.md §8: a conforming decoder either fails cleanly or stays
// in bounds.
func TestDecoderNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		n := rng.Intn(64)
		src := make([]byte, n)
		for j := range src {
			src[j] = byte(rng.Intn(256))
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("Decompress panicked on %x: %v", src, r)
				}
			}()

			declaredLen, err := UncompressedLen(src)
			if err != nil {
				require.False(t, Valid(src))
				return
			}
			if declaredLen > len(src)*64 {
				// A declared length wildly larger than the input could
				// never be satisfied by this few tag bytes; skip
				// allocating for it rather than asserting anything.
				return
			}
			out := make([]byte, declaredLen)
			written, err := Decompress(out, src)
			if err == nil {
				require.LessOrEqual(t, written, len(out))
				require.True(t, Valid(src))
			}
		}()
	}
}
