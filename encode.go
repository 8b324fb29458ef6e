// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import "math/bits"

// maxBlockSize is the largest fragment the compressor ever hands to
// compressFragment. Input longer than this is split into consecutive
// fragments, each compressed independently with its own hash table.
const maxBlockSize = 65536

// MaxEncodedLen returns the maximum length of a Snappy block, given
// its uncompressed length. It returns a negative value if srcLen
// cannot be encoded (srcLen < 0 or srcLen > maxUint32).
//
// Compressed data can be defined as:
//
//	compressed := item* literal*
//	item       := literal* copy
//
// The trailing literal sequence has a space blowup of at most 63/61,
// since a literal of length 61 needs one tag byte plus one extra byte
// for length information. A one-byte literal followed by a five-byte
// copy is the worst case for item blowup, turning 6 bytes of input
// into 7 bytes of output. That factor dominates, giving the estimate
// below.
func MaxEncodedLen(srcLen int) int {
	if srcLen < 0 {
		return -1
	}
	n := uint64(srcLen)
	if n > maxUint32 {
		return -1
	}
	n = 32 + n + n/6
	return int(n)
}

// Compress writes the Snappy-compressed form of src to dst and
// returns the number of bytes written.
//
// opts.Level selects the compression strategy; LevelBetter is
// currently identical to LevelFast. dst must be at least
// MaxEncodedLen(len(src)) bytes, or Compress returns
// ErrInsufficientBuffer. Compress returns ErrTooLarge if src is longer
// than 2^32-1 bytes.
func Compress(dst, src []byte, opts Options) (int, error) {
	if uint64(len(src)) > maxUint32 {
		return 0, ErrTooLarge
	}
	need := MaxEncodedLen(len(src))
	if need < 0 || len(dst) < need {
		return 0, ErrInsufficientBuffer
	}

	d := putUvarint32(dst, uint32(len(src)))
	for len(src) > 0 {
		p := src
		src = nil
		if len(p) > maxBlockSize {
			p, src = p[:maxBlockSize], p[maxBlockSize:]
		}
		d += compressFragment(dst[d:], p)
	}
	return d, nil
}

// compressFragment compresses a single fragment of at most
// maxBlockSize bytes, appending its tag stream to dst, and returns the
// number of bytes written. dst must be long enough to hold the
// encoded fragment (the caller guarantees this via MaxEncodedLen).
func compressFragment(dst, src []byte) int {
	n := len(src)
	if n < 4 {
		return emitLiteral(dst, src)
	}

	// sLimit marks where the match search must stop: it keeps a
	// 15-byte margin ahead of the cursor, so the load32 of the hash
	// probe (and of the intermediate insert after a match) always stays
	// in bounds. extendMatch checks its own loads against n.
	sLimit := n - 15
	if sLimit < 1 {
		return emitLiteral(dst, src)
	}

	_, shift := tableParams(n)
	var table [maxTableSize]uint16
	const tableMask = maxTableSize - 1

	d := 0
	nextEmit := 0
	nextIP := 1

	for {
		ip := nextIP
		bytesSkipped := ip - nextEmit
		skip := bytesSkipped / 32
		nextIP = ip + 1 + skip
		if nextIP > sLimit {
			break
		}

		word := load32(src, ip)
		h := hash(word, shift) & tableMask
		candidate := int(table[h])
		table[h] = uint16(ip)
		if candidate == 0 || ip-candidate > 65535 || load32(src, candidate) != word {
			continue
		}

		// A 4-byte match at ip; emit the pending literal before it.
		d += emitLiteral(dst[d:], src[nextEmit:ip])

		matchLength := 4 + extendMatch(src, ip+4, candidate+4, n)
		d += emitCopy(dst[d:], ip-candidate, matchLength)

		ip += matchLength
		nextEmit = ip
		nextIP = ip + 1

		if ip < sLimit {
			prevHash := hash(load32(src, ip-1), shift) & tableMask
			table[prevHash] = uint16(ip - 1)
		}
	}

	if nextEmit < n {
		d += emitLiteral(dst[d:], src[nextEmit:])
	}
	return d
}

// extendMatch reports how many more bytes, beyond the 4 already known
// to match, src[s:] and src[c:] have in common, comparing 8 bytes at a
// time, then 4, then 1, up to index n (exclusive) in src.
func extendMatch(src []byte, s, c, n int) int {
	base := s
	for s+8 <= n {
		x := load64(src, s) ^ load64(src, c)
		if x != 0 {
			return s + bits.TrailingZeros64(x)/8 - base
		}
		s += 8
		c += 8
	}
	for s+4 <= n && load32(src, s) == load32(src, c) {
		s += 4
		c += 4
	}
	for s < n && src[s] == src[c] {
		s++
		c++
	}
	return s - base
}
