// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package aquahash implements AquaHash, a 128-bit non-cryptographic
// hash built from single AES encryption rounds.
//
// Inputs shorter than BlockSize bytes are hashed with a single
// accumulator (the small key algorithm); longer inputs run four
// independent 128-bit lanes over 64-byte blocks (the large key
// algorithm). A Digest computes the same value incrementally.
//
// On amd64 the AES rounds use the AESENC instruction when available;
// elsewhere a table driven software round gives identical results.
package aquahash

import (
	"encoding/binary"
	"encoding/hex"
)

// Size of an AquaHash checksum in bytes.
const Size = 16

// BlockSize is the large key block size in bytes. Inputs shorter than
// BlockSize are hashed with the small key algorithm.
const BlockSize = 64

// Seed perturbs the initial hashing state. The zero Seed is the
// default.
type Seed [Size]byte

// SeedFromUint64 returns the seed with hi as its upper and lo as its
// lower 64 bits.
func SeedFromUint64(hi, lo uint64) Seed {
	return Seed(pair(hi, lo))
}

// Sum128 is an AquaHash checksum.
type Sum128 [Size]byte

// String returns the checksum as 32 lowercase hex characters, one
// pair per byte in byte order.
func (s Sum128) String() string {
	return hex.EncodeToString(s[:])
}

// Hash returns the AquaHash checksum of data, using the small key
// algorithm below BlockSize bytes and the large key algorithm
// otherwise.
func Hash(data []byte, seed Seed) Sum128 {
	if len(data) < BlockSize {
		return SmallKey(data, seed)
	}
	return LargeKey(data, seed)
}

// Hash64 returns the lower 64 bits of the zero seed checksum of data.
func Hash64(data []byte) uint64 {
	s := Hash(data, Seed{})
	return binary.LittleEndian.Uint64(s[:8])
}

// SmallKey returns the checksum of data using the small key
// algorithm. Hash selects it for inputs shorter than BlockSize.
func SmallKey(data []byte, seed Seed) Sum128 {
	h := [16]byte(seed)
	n := len(data)

	// 128-bit blocks
	if n >= 16 {
		temp := tempInit
		for len(data) >= 16 {
			b := load16(data)
			h = mix(h, b)
			temp = mix(temp, b)
			data = data[16:]
		}
		h = mix(h, temp)
	}

	if n&8 != 0 {
		h = xor128(h, pad8(data))
		data = data[8:]
	}
	if n&4 != 0 {
		h = xor128(h, pad4(data))
		data = data[4:]
	}
	if n&2 != 0 {
		h = xor128(h, pad2(data))
		data = data[2:]
	}
	if n&1 != 0 {
		h = xor128(h, pad1(data))
	}

	// Sparse inputs need no less than three rounds to diffuse.
	h = mix(h, final1)
	h = mix(h, final2)
	return Sum128(mix(h, final3))
}

// LargeKey returns the checksum of data using the large key
// algorithm. Hash selects it for inputs of BlockSize bytes or more.
func LargeKey(data []byte, seed Seed) Sum128 {
	lanes := initLanes(seed)
	n := len(data) &^ (BlockSize - 1)
	if n > 0 {
		blocks(&lanes, data[:n])
	}
	return finish(&lanes, data[n:])
}

func initLanes(seed Seed) (lanes [4][16]byte) {
	for i := range lanes {
		lanes[i] = xor128([16]byte(seed), laneInit[i])
	}
	return
}

// finish absorbs the final partial block rem (less than BlockSize
// bytes), mixes the lanes together and reduces them to a checksum.
func finish(lanes *[4][16]byte, rem []byte) Sum128 {
	n := len(rem)
	if n&32 != 0 {
		lanes[0] = mix(lanes[0], load16(rem))
		lanes[1] = mix(lanes[1], load16(rem[16:]))
		rem = rem[32:]
	}
	if n&16 != 0 {
		lanes[2] = mix(lanes[2], load16(rem))
		rem = rem[16:]
	}

	if n&8 != 0 {
		lanes[3] = mix(lanes[3], pad8(rem))
		rem = rem[8:]
	}
	if n&4 != 0 {
		lanes[0] = mix(lanes[0], pad4(rem))
		rem = rem[4:]
	}
	if n&2 != 0 {
		lanes[1] = mix(lanes[1], pad2(rem))
		rem = rem[2:]
	}
	if n&1 != 0 {
		lanes[2] = mix(lanes[2], pad1(rem))
	}

	// Mix lanes indirectly through their combined xor.
	m := xor128(xor128(lanes[0], lanes[1]), xor128(lanes[2], lanes[3]))
	for i := range lanes {
		lanes[i] = mix(lanes[i], m)
	}

	// 512 to 128 bits
	h := mix(mix(lanes[0], lanes[1]), mix(lanes[2], lanes[3]))
	return Sum128(mix(h, final1))
}
