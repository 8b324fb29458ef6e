// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// putUvarint32 writes the minimal little-endian base-128 encoding of
// v (1 to 5 bytes, since v is a uint32) to dst and returns the number
// of bytes written. dst must have at least 5 bytes of room.
func putUvarint32(dst []byte, v uint32) int {
	i := 0
	for v >= 0x80 {
		dst[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	dst[i] = byte(v)
	return i + 1
}

// uvarint32 reads a little-endian base-128 varint from the head of
// src and returns the decoded value, the number of bytes consumed,
// and whether the encoding was valid.
//
// It fails (n == 0) if src ends before a terminating byte is found
// within 5 bytes, if the fifth byte still has its continuation bit
// set, or if the decoded value overflows 32 bits.
func uvarint32(src []byte) (v uint32, n int, ok bool) {
	for i := 0; i < len(src) && i < 5; i++ {
		b := src[i]
		if b < 0x80 {
			if i == 4 && b > 0xf {
				// Fifth byte contributes bits 28..34; anything above
				// bit 3 set would overflow uint32.
				return 0, 0, false
			}
			v |= uint32(b) << uint(7*i)
			return v, i + 1, true
		}
		v |= uint32(b&0x7f) << uint(7*i)
	}
	return 0, 0, false
}
