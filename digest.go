// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package aquahash

import (
	"errors"
	"hash"
	"math"
)

// maxLen is the largest total input a Digest accepts.
const maxLen = math.MaxUint64 - 1

var (
	// ErrFinalized is returned when a Digest is used after Finalize.
	ErrFinalized = errors.New("aquahash: digest already finalized, Reset first before using it again")

	// ErrLengthOverflow is returned when the total input of a Digest
	// would exceed the maximum supported length.
	ErrLengthOverflow = errors.New("aquahash: input length overflow")
)

type state uint8

const (
	active state = iota
	finalized
)

// Digest computes AquaHash incrementally. Any partitioning of the
// input into Update calls gives the same checksum as Hash over the
// whole input.
//
// A Digest is not safe for concurrent use.
type Digest struct {
	lanes  [4][16]byte
	seed   Seed
	x      [BlockSize]byte
	nx     int
	len    uint64
	state  state
	result Sum128
}

var _ hash.Hash = (*Digest)(nil)

// New returns a Digest initialized with seed.
func New(seed Seed) *Digest {
	d := &Digest{}
	d.ResetSeed(seed)
	return d
}

// Reset discards all input and reinitializes the digest with its seed.
func (d *Digest) Reset() { d.ResetSeed(d.seed) }

// ResetSeed discards all input and reinitializes the digest with seed.
func (d *Digest) ResetSeed(seed Seed) {
	d.seed = seed
	d.lanes = initLanes(seed)
	d.nx = 0
	d.len = 0
	d.state = active
	d.result = Sum128{}
}

// Size - Return size of checksum
func (d *Digest) Size() int { return Size }

// BlockSize - Return blocksize of checksum
func (d *Digest) BlockSize() int { return BlockSize }

// Update appends p to the hashed input.
func (d *Digest) Update(p []byte) error {
	if d.state == finalized {
		return ErrFinalized
	}
	if uint64(len(p)) > maxLen-d.len {
		return ErrLengthOverflow
	}
	if len(p) == 0 {
		return nil
	}

	d.len += uint64(len(p))
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx < BlockSize {
			return nil
		}
		blocks(&d.lanes, d.x[:])
		d.nx = 0
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(&d.lanes, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return nil
}

// Write adds p to the hashed input. It only fails when the digest
// was finalized or its length limit is reached.
func (d *Digest) Write(p []byte) (int, error) {
	if err := d.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize returns the checksum of all input. The digest cannot be
// updated or finalized again until Reset.
func (d *Digest) Finalize() (Sum128, error) {
	if d.state == finalized {
		return Sum128{}, ErrFinalized
	}
	d.result = d.checkSum()
	d.state = finalized
	return d.result, nil
}

// Sum appends the checksum of the input so far to in. Unlike Finalize
// it leaves the digest usable.
func (d *Digest) Sum(in []byte) []byte {
	if d.state == finalized {
		return append(in, d.result[:]...)
	}
	dt := *d
	s := dt.checkSum()
	return append(in, s[:]...)
}

// checkSum computes the checksum, consuming the lanes.
func (d *Digest) checkSum() Sum128 {
	if d.len < BlockSize {
		return SmallKey(d.x[:d.nx], d.seed)
	}
	return finish(&d.lanes, d.x[:d.nx])
}
