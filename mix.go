// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package aquahash

import (
	"encoding/binary"
	"math/bits"
)

// Mixing kernels. Default to the pure go fallback; replaced at init
// when the CPU can run AESENC.
var (
	implementation = "go"
	aesenc         = aesencGeneric
	blocks         = blocksGeneric
)

// Implementation returns the name of the mixing kernel in use,
// "go" or "aesni".
func Implementation() string { return implementation }

// AES S-box and the four encryption tables combining
// SubBytes and MixColumns.
var (
	sbox               [256]byte
	te0, te1, te2, te3 [256]uint32
)

func init() {
	for i := 0; i < 256; i++ {
		x := inverse(byte(i))
		s := x ^ bits.RotateLeft8(x, 1) ^ bits.RotateLeft8(x, 2) ^ bits.RotateLeft8(x, 3) ^ bits.RotateLeft8(x, 4) ^ 0x63
		sbox[i] = s

		w := uint32(gmul(s, 2))<<24 | uint32(s)<<16 | uint32(s)<<8 | uint32(gmul(s, 3))
		te0[i] = w
		te1[i] = bits.RotateLeft32(w, -8)
		te2[i] = bits.RotateLeft32(w, -16)
		te3[i] = bits.RotateLeft32(w, -24)
	}
}

// gmul multiplies in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) (p byte) {
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return
}

// inverse returns the multiplicative inverse in GF(2^8), a^254.
// Zero maps to zero.
func inverse(a byte) byte {
	r := byte(1)
	for e := 254; e > 0; e >>= 1 {
		if e&1 != 0 {
			r = gmul(r, a)
		}
		a = gmul(a, a)
	}
	return r
}

// aesencGeneric performs one round of AES encryption of src with
// round key key, the same as the AESENC instruction.
func aesencGeneric(dst, src, key *[16]byte) {
	s0 := binary.BigEndian.Uint32(src[0:4])
	s1 := binary.BigEndian.Uint32(src[4:8])
	s2 := binary.BigEndian.Uint32(src[8:12])
	s3 := binary.BigEndian.Uint32(src[12:16])

	k0 := binary.BigEndian.Uint32(key[0:4])
	k1 := binary.BigEndian.Uint32(key[4:8])
	k2 := binary.BigEndian.Uint32(key[8:12])
	k3 := binary.BigEndian.Uint32(key[12:16])

	t0 := k0 ^ te0[uint8(s0>>24)] ^ te1[uint8(s1>>16)] ^ te2[uint8(s2>>8)] ^ te3[uint8(s3)]
	t1 := k1 ^ te0[uint8(s1>>24)] ^ te1[uint8(s2>>16)] ^ te2[uint8(s3>>8)] ^ te3[uint8(s0)]
	t2 := k2 ^ te0[uint8(s2>>24)] ^ te1[uint8(s3>>16)] ^ te2[uint8(s0>>8)] ^ te3[uint8(s1)]
	t3 := k3 ^ te0[uint8(s3>>24)] ^ te1[uint8(s0>>16)] ^ te2[uint8(s1>>8)] ^ te3[uint8(s2)]

	binary.BigEndian.PutUint32(dst[0:4], t0)
	binary.BigEndian.PutUint32(dst[4:8], t1)
	binary.BigEndian.PutUint32(dst[8:12], t2)
	binary.BigEndian.PutUint32(dst[12:16], t3)
}

// blocksGeneric mixes whole 64-byte blocks into the four lanes,
// one 16-byte sub-block per lane.
func blocksGeneric(lanes *[4][16]byte, p []byte) {
	if len(p)%BlockSize != 0 {
		panic("blocks can only process multiples of BlockSize")
	}

	var b [16]byte
	for len(p) >= BlockSize {
		for i := range lanes {
			copy(b[:], p[16*i:16*i+16])
			aesencGeneric(&lanes[i], &lanes[i], &b)
		}
		p = p[BlockSize:]
	}
}

// mix returns aesenc(state, key).
func mix(state, key [16]byte) (r [16]byte) {
	aesenc(&r, &state, &key)
	return
}

func xor128(a, b [16]byte) (r [16]byte) {
	for i := range r {
		r[i] = a[i] ^ b[i]
	}
	return
}

// load16 copies the first 16 bytes of p.
func load16(p []byte) (b [16]byte) {
	copy(b[:], p[:16])
	return
}
