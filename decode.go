// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// UncompressedLen reads only the varint length prefix of a Snappy
// block and returns the uncompressed length it declares. It does not
// validate the rest of the stream; a length prefix can be well-formed
// even if the tag stream that follows is corrupt.
func UncompressedLen(src []byte) (int, error) {
	v, _, ok := uvarint32(src)
	if !ok {
		return 0, ErrInvalidLength
	}
	return int(v), nil
}

// Decompress writes the decompressed form of src to dst and returns
// the number of bytes written, which is always exactly the
// uncompressed length declared by src's length prefix.
//
// dst must have length equal to that declared length: a dst that is
// too small fails with ErrInsufficientBuffer, one that is too large
// fails with ErrInvalidLength (the prefix and the buffer disagree
// about how much data there is). Any violation of the tag-stream
// grammar, or of the bounds a literal's or copy's length and offset
// must satisfy against the cursors seen so far, fails with
// ErrCorrupted.
func Decompress(dst, src []byte) (int, error) {
	declaredLen, hdrLen, ok := uvarint32(src)
	if !ok {
		return 0, ErrInvalidLength
	}
	dLen := int(declaredLen)
	if dLen > len(dst) {
		return 0, ErrInsufficientBuffer
	}
	if dLen < len(dst) {
		return 0, ErrInvalidLength
	}

	ip := hdrLen
	op := 0
	for ip < len(src) {
		t, ok := parseTag(src, ip)
		if !ok {
			return 0, ErrCorrupted
		}

		if t.kind == tagLiteral {
			litStart := ip + t.hdrLen
			litEnd := litStart + t.length
			if litEnd > len(src) || op+t.length > len(dst) {
				return 0, ErrCorrupted
			}
			copy(dst[op:], src[litStart:litEnd])
			op += t.length
			ip = litEnd
			continue
		}

		// Copy: every byte read from dst[op-offset] must already have
		// been produced, and the whole run must fit in dst. offset ==
		// 0 would read from dst[op], which was never written by this
		// call (and would divide-by-zero nothing, but is simply
		// meaningless as a back-reference), so it is rejected here
		// too.
		if t.offset < 1 || t.offset > op || op+t.length > len(dst) {
			return 0, ErrCorrupted
		}
		// This loop must run forward one byte at a time: when
		// t.offset < t.length the source and destination ranges
		// overlap, and byte k of the copy has to observe byte k-offset
		// of the *copy itself*, not the pre-copy contents of dst. That
		// self-referential read is exactly how Snappy encodes
		// run-length repeats; a bulk copy() (memmove semantics) would
		// read stale bytes for the overlapping region.
		for i := 0; i < t.length; i++ {
			dst[op+i] = dst[op+i-t.offset]
		}
		op += t.length
		ip += t.hdrLen
	}

	if ip != len(src) || op != dLen {
		return 0, ErrCorrupted
	}
	return op, nil
}
