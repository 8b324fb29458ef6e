// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snappy implements the Snappy block-format compression codec.
//
// It is a pure Go, bit-exact port of Google's reference C++ Snappy
// encoder and decoder: the same hash-driven LZ77 match search and tag
// encoding on the way in, the same bounds-checked tagged-token state
// machine on the way out. It trades maximum compression ratio for
// throughput, and is interoperable with any conforming Snappy
// implementation at the block level.
//
// The package is deliberately narrow. It exposes two buffer-to-buffer
// primitives, Compress and Decompress, plus two inspection helpers,
// UncompressedLen and Valid. It does not implement the Snappy framing
// (streaming) format, CRC verification, or any host-platform byte
// container convenience wrappers; those are left to callers or to
// higher-level adapters such as cmd/snappytool.
package snappy

import "errors"

// Version is the on-disk format version this package produces and
// consumes. It is not encoded anywhere in the wire format; it exists
// so callers can log or assert which codec revision they are linked
// against.
const Version = "1.2.2-compatible"

// Errors returned by Compress, Decompress and UncompressedLen. (Valid
// reports only a bool.)
//
// The taxonomy is closed: every failure the core can produce is one of
// these four sentinels, matched with errors.Is.
var (
	// ErrCorrupted is returned by Decompress when the compressed stream
	// violates the tag-stream grammar or a bounds check.
	ErrCorrupted = errors.New("snappy: corrupted input")

	// ErrInsufficientBuffer is returned by Compress when dst is smaller
	// than MaxEncodedLen(len(src)), and by Decompress when dst is
	// smaller than the declared uncompressed length.
	ErrInsufficientBuffer = errors.New("snappy: destination buffer too small")

	// ErrInvalidLength is returned when the varint length prefix is
	// malformed: it does not terminate within 5 bytes, or it decodes to
	// a value that does not fit in 32 bits.
	ErrInvalidLength = errors.New("snappy: invalid uncompressed length")

	// ErrTooLarge is returned by Compress when src is longer than
	// maxUint32, the largest input Snappy can address.
	ErrTooLarge = errors.New("snappy: input too large to encode")
)

// Level selects a compression strategy. LevelFast is the only
// strategy this package implements; LevelBetter is reserved for a
// future, slower, higher-ratio encoder and currently behaves
// identically to LevelFast. Output is format-compliant regardless of
// level: a decoder cannot tell which level produced a given block.
type Level int

const (
	// LevelFast is the default, throughput-tuned strategy described in
	// this package's match search.
	LevelFast Level = iota

	// LevelBetter is reserved. Treated as LevelFast.
	LevelBetter
)

// Options configures Compress.
type Options struct {
	// Level selects the compression strategy. The zero value is
	// LevelFast.
	Level Level
}

// maxUint32 is the largest uncompressed length this format can
// express: the varint length prefix is defined over uint32, and
// fragment-relative hash table positions are 16-bit, so fragments
// (and therefore the whole stream) never need to address more.
const maxUint32 = 1<<32 - 1
