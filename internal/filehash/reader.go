// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package filehash

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultBufferSize is the read size used when Reader.BufferSize is 0.
const DefaultBufferSize = 1 << 16

// Reader hashes streams in BufferSize chunks.
type Reader struct {
	Algorithm  Algorithm
	BufferSize int
}

// File returns the checksum of the file at path.
func (r Reader) File(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sum, err := r.Read(f)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", path, err)
	}
	return sum, nil
}

// Read returns the checksum of everything read from rd. Input that fits
// in a single buffer is hashed in one shot.
func (r Reader) Read(rd io.Reader) ([]byte, error) {
	size := r.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	buf := make([]byte, size)

	n, err := io.ReadFull(rd, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return r.Algorithm.Sum(buf[:n]), nil
	case err != nil:
		return nil, err
	}

	h := r.Algorithm.New()
	for {
		h.Write(buf[:n])
		n, err = io.ReadFull(rd, buf)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			h.Write(buf[:n])
			return h.Sum(nil), nil
		}
		if err != nil {
			return nil, err
		}
	}
}
