// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package filehash computes file checksums with a selectable algorithm.
package filehash

import (
	"encoding/binary"
	"fmt"
	"hash"

	"github.com/cespare/xxhash/v2"
	"github.com/minio/aquahash"
)

// Algorithm is a checksum algorithm usable both one-shot and
// incrementally. For the same input Sum(p) and New() fed with p must
// produce the same bytes.
type Algorithm interface {
	Name() string
	Sum(p []byte) []byte
	New() hash.Hash
}

// Algorithm names accepted by Lookup.
const (
	NameAquaHash = "aquahash"
	NameXXHash   = "xxhash"
)

type aquaAlgorithm struct {
	seed aquahash.Seed
}

// AquaHash returns the AquaHash algorithm with the given seed.
func AquaHash(seed aquahash.Seed) Algorithm {
	return aquaAlgorithm{seed: seed}
}

func (a aquaAlgorithm) Name() string { return NameAquaHash }

func (a aquaAlgorithm) Sum(p []byte) []byte {
	s := aquahash.Hash(p, a.seed)
	return s[:]
}

func (a aquaAlgorithm) New() hash.Hash { return aquahash.New(a.seed) }

type xxAlgorithm struct{}

// XXHash returns xxHash64 with seed 0. Checksums are the 8 bytes of
// the 64-bit value in little endian order.
func XXHash() Algorithm { return xxAlgorithm{} }

func (xxAlgorithm) Name() string { return NameXXHash }

func (xxAlgorithm) Sum(p []byte) []byte {
	return binary.LittleEndian.AppendUint64(nil, xxhash.Sum64(p))
}

func (xxAlgorithm) New() hash.Hash { return xxDigest{xxhash.New()} }

// xxDigest reverses the byte order xxhash.Digest.Sum appends.
type xxDigest struct {
	*xxhash.Digest
}

func (d xxDigest) Sum(b []byte) []byte {
	return binary.LittleEndian.AppendUint64(b, d.Sum64())
}

// Lookup returns the algorithm called name. The seed is only used by
// AquaHash.
func Lookup(name string, seed aquahash.Seed) (Algorithm, error) {
	switch name {
	case NameAquaHash, "":
		return AquaHash(seed), nil
	case NameXXHash:
		return XXHash(), nil
	}
	return nil, fmt.Errorf("filehash: unknown algorithm %q", name)
}
