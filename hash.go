// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// load32 reads a little-endian uint32 from b starting at i. The
// three-index slice expression helps the compiler eliminate bounds
// checks on the individual byte loads below.
func load32(b []byte, i int) uint32 {
	b = b[i : i+4 : len(b)]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// load64 reads a little-endian uint64 from b starting at i.
func load64(b []byte, i int) uint64 {
	b = b[i : i+8 : len(b)]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// hashSeed is the multiplicative hash constant from the C++ reference
// encoder. It has no particular meaning beyond distributing 4-byte
// windows across the table well in practice.
const hashSeed = 0x1e35a7bd

// hash folds a 4-byte window down to a table index. shift is
// 32-log2(tableSize), so the result is always in [0, tableSize).
func hash(u uint32, shift uint32) uint32 {
	return (u * hashSeed) >> shift
}

const (
	minTableSize = 1 << 8
	maxTableSize = 1 << 14
)

// tableParams picks the hash table size for a fragment of n bytes:
// the smallest power of two in [minTableSize, maxTableSize] that is
// at least n, plus the corresponding hash shift.
func tableParams(n int) (tableSize int, shift uint32) {
	tableSize = minTableSize
	shift = 32 - 8
	for tableSize < maxTableSize && tableSize < n {
		shift--
		tableSize <<= 1
	}
	return tableSize, shift
}
