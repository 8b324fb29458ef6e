// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// The low two bits of a tag byte select its operation kind.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// emitLiteral writes a literal chunk and returns the number of bytes
// written. It assumes dst is long enough to hold the encoded bytes and
// that 1 <= len(lit) <= maxUint32.
func emitLiteral(dst, lit []byte) int {
	i, n := 0, uint32(len(lit)-1)
	switch {
	case n < 60:
		dst[0] = uint8(n)<<2 | tagLiteral
		i = 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = uint8(n)
		i = 2
	case n < 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		i = 3
	case n < 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		dst[3] = uint8(n >> 16)
		i = 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = uint8(n)
		dst[2] = uint8(n >> 8)
		dst[3] = uint8(n >> 16)
		dst[4] = uint8(n >> 24)
		i = 5
	}
	return i + copy(dst[i:], lit)
}

// emitCopy writes one or more copy chunks encoding a length-byte
// back-reference at the given offset, and returns the number of bytes
// written. It assumes 1 <= offset and 4 <= length <= 65535.
//
// Copies longer than 64 bytes are split into 64-byte tagCopy2 chunks
// followed by a tail chunk for the remainder, bit-for-bit matching the
// C++ reference encoder's chunking (see the Open Question in
// SPEC_FULL.md §9: merging consecutive chunks would still round-trip,
// but would no longer be byte-identical to the reference).
func emitCopy(dst []byte, offset, length int) int {
	i := 0
	// The maximum length for a single tagCopy1 or tagCopy2 op is 64
	// bytes. The loop threshold is a little higher (68 = 64+4) and the
	// length emitted below a little lower (60 = 64-4) because it is
	// shorter to encode a length-67 copy as a length-60 tagCopy2
	// followed by a length-7 tagCopy1 (3+2 bytes) than as a length-64
	// tagCopy2 followed by a length-3 tagCopy2 (3+3 bytes); 4 is the
	// minimum length for a tagCopy1 op.
	for length >= 68 {
		dst[i+0] = 63<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		i += 3
		length -= 64
	}
	if length > 64 {
		dst[i+0] = 59<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		i += 3
		length -= 60
	}
	if length >= 12 || offset >= 2048 {
		dst[i+0] = uint8(length-1)<<2 | tagCopy2
		dst[i+1] = uint8(offset)
		dst[i+2] = uint8(offset >> 8)
		return i + 3
	}
	dst[i+0] = uint8(offset>>8)<<5 | uint8(length-4)<<2 | tagCopy1
	dst[i+1] = uint8(offset)
	return i + 2
}

// emitCopy4 writes a single copy chunk whose offset does not fit in
// 16 bits. The encoder's own match search never produces an offset
// this large within one 64 KiB fragment (a fragment's hash table
// entries are fragment-relative 16-bit positions), but the tag format
// admits it and the decoder must accept it from other encoders; this
// helper exists so a future whole-buffer or streaming encoder built on
// top of this package can still emit spec-conformant tagCopy4 tokens.
func emitCopy4(dst []byte, offset uint32, length int) int {
	dst[0] = uint8(length-1)<<2 | tagCopy4
	dst[1] = uint8(offset)
	dst[2] = uint8(offset >> 8)
	dst[3] = uint8(offset >> 16)
	dst[4] = uint8(offset >> 24)
	return 5
}

// decodedTag describes one parsed operation from a compressed tag
// stream: its kind, the length it expands to (or, for a literal, the
// length of the literal body still to be read from src), its offset
// (copies only), and the number of header bytes the tag and any
// follow-on length/offset bytes occupied. It does not include the
// literal body itself; callers read that separately so they can
// bounds-check it against both the input and the output before
// copying.
type decodedTag struct {
	kind   byte
	length int
	offset int
	hdrLen int
}

// parseTag decodes the operation header at src[s]. It reports ok=false
// if the tag's follow-on bytes would run past the end of src; the
// caller must treat that as corrupted input. It does not validate
// length or offset against the output cursor — that is the caller's
// job, since the legal range depends on how many bytes have been
// produced so far.
func parseTag(src []byte, s int) (t decodedTag, ok bool) {
	if s >= len(src) {
		return decodedTag{}, false
	}
	tag := src[s]
	switch tag & 0x03 {
	case tagLiteral:
		x := uint32(tag >> 2)
		switch {
		case x < 60:
			return decodedTag{kind: tagLiteral, length: int(x) + 1, hdrLen: 1}, true
		case x == 60:
			if s+2 > len(src) {
				return decodedTag{}, false
			}
			x = uint32(src[s+1])
			return decodedTag{kind: tagLiteral, length: int(x) + 1, hdrLen: 2}, true
		case x == 61:
			if s+3 > len(src) {
				return decodedTag{}, false
			}
			x = uint32(src[s+1]) | uint32(src[s+2])<<8
			return decodedTag{kind: tagLiteral, length: int(x) + 1, hdrLen: 3}, true
		case x == 62:
			if s+4 > len(src) {
				return decodedTag{}, false
			}
			x = uint32(src[s+1]) | uint32(src[s+2])<<8 | uint32(src[s+3])<<16
			return decodedTag{kind: tagLiteral, length: int(x) + 1, hdrLen: 4}, true
		default: // x == 63
			if s+5 > len(src) {
				return decodedTag{}, false
			}
			x = uint32(src[s+1]) | uint32(src[s+2])<<8 | uint32(src[s+3])<<16 | uint32(src[s+4])<<24
			if x == maxUint32 {
				// length would be x+1, overflowing; no valid literal
				// is this long within a 2^32-1 byte stream anyway.
				return decodedTag{}, false
			}
			return decodedTag{kind: tagLiteral, length: int(x) + 1, hdrLen: 5}, true
		}

	case tagCopy1:
		if s+2 > len(src) {
			return decodedTag{}, false
		}
		length := 4 + int(tag>>2)&0x7
		offset := int(tag&0xe0)<<3 | int(src[s+1])
		return decodedTag{kind: tagCopy1, length: length, offset: offset, hdrLen: 2}, true

	case tagCopy2:
		if s+3 > len(src) {
			return decodedTag{}, false
		}
		length := int(tag>>2) + 1
		offset := int(src[s+1]) | int(src[s+2])<<8
		return decodedTag{kind: tagCopy2, length: length, offset: offset, hdrLen: 3}, true

	default: // tagCopy4
		if s+5 > len(src) {
			return decodedTag{}, false
		}
		length := int(tag>>2) + 1
		offset := int(src[s+1]) | int(src[s+2])<<8 | int(src[s+3])<<16 | int(src[s+4])<<24
		return decodedTag{kind: tagCopy4, length: length, offset: offset, hdrLen: 5}, true
	}
}
