// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package aquahash

import "encoding/binary"

// AquaHash magic numbers. The narrower constants below are
// truncations of these and are kept as literal values.
const (
	c1  = 0xa11202c9b468bea1
	c2  = 0xd75157a01452495b
	c3  = 0xb1293b3305418592
	c4  = 0xd210d232c6429b69
	c5  = 0xbd3dc2b7b87c4715
	c6  = 0x6a6c9527ac2e0e4e
	c7  = 0xcc96ed1674eaaa03
	c8  = 0x1e863f24b2a8316a
	c9  = 0x8e51ef21fabb4522
	c10 = 0xe43d7a0656954b6c
	c11 = 0x56082007c71ab18f
	c12 = 0x76435569a03af7fa
	c13 = 0xd2600de7157abc68
	c14 = 0x6339e901c3031efb
)

// 32-bit filler for the 4 byte tail, taken from c3 and c4.
const (
	c32x1 = 0xb1293b33
	c32x2 = 0x05418592
	c32x3 = 0xd210d232
)

// 16-bit filler for the 2 byte tail, taken from c5 and c6.
var c16 = [7]uint16{0xbd3d, 0xc2b7, 0xb87c, 0x4715, 0x6a6c, 0x9527, 0xac2e}

// 8-bit filler for the 1 byte tail: c7 and the top seven bytes of c8.
var c8x = [15]byte{
	0xcc, 0x96, 0xed, 0x16, 0x74, 0xea, 0xaa, 0x03,
	0x1e, 0x86, 0x3f, 0x24, 0xb2, 0xa8, 0x31,
}

// pair returns the 128-bit value with hi in the upper and lo in the
// lower half, in the byte order an XMM register is stored to memory.
func pair(hi, lo uint64) (v [16]byte) {
	binary.LittleEndian.PutUint64(v[0:], lo)
	binary.LittleEndian.PutUint64(v[8:], hi)
	return
}

var (
	laneInit = [4][16]byte{pair(c1, c2), pair(c3, c4), pair(c5, c6), pair(c7, c8)}
	tempInit = pair(c1, c2)

	final1 = pair(c9, c10)
	final2 = pair(c11, c12)
	final3 = pair(c13, c14)
)

// The pad functions build the block that absorbs a 8, 4, 2 or 1 byte
// tail. Real bytes sit at a fixed offset, everything else is filler.

func pad8(p []byte) (b [16]byte) {
	binary.LittleEndian.PutUint64(b[0:], c1)
	copy(b[8:16], p[:8])
	return
}

func pad4(p []byte) (b [16]byte) {
	binary.LittleEndian.PutUint32(b[0:], c32x3)
	copy(b[4:8], p[:4])
	binary.LittleEndian.PutUint32(b[8:], c32x2)
	binary.LittleEndian.PutUint32(b[12:], c32x1)
	return
}

func pad2(p []byte) (b [16]byte) {
	binary.LittleEndian.PutUint16(b[0:], c16[6])
	copy(b[2:4], p[:2])
	for i := 0; i < 6; i++ {
		// c16[5] at offset 4 up to c16[0] at offset 14
		binary.LittleEndian.PutUint16(b[4+2*i:], c16[5-i])
	}
	return
}

func pad1(p []byte) (b [16]byte) {
	b[0] = c8x[14]
	b[1] = p[0]
	for i := 2; i < 16; i++ {
		b[i] = c8x[15-i]
	}
	return
}
