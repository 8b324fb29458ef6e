// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// Valid reports whether Decompress would succeed on src, given a dst
// sized exactly to src's declared uncompressed length. It runs the
// same tag-stream grammar and bounds checks Decompress does, but
// tracks only a running output size instead of writing any bytes,
// so it can validate arbitrarily large or untrusted input cheaply.
func Valid(src []byte) bool {
	declaredLen, hdrLen, ok := uvarint32(src)
	if !ok {
		return false
	}
	dLen := int(declaredLen)

	ip := hdrLen
	op := 0
	for ip < len(src) {
		t, ok := parseTag(src, ip)
		if !ok {
			return false
		}

		if t.kind == tagLiteral {
			litEnd := ip + t.hdrLen + t.length
			if litEnd > len(src) || op+t.length > dLen {
				return false
			}
			op += t.length
			ip = litEnd
			continue
		}

		if t.offset < 1 || t.offset > op || op+t.length > dLen {
			return false
		}
		op += t.length
		ip += t.hdrLen
	}

	return ip == len(src) && op == dLen
}
