// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package aquahash

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/bits"
	"math/rand"
	"testing"
)

type aquaTest struct {
	in   string
	want string
}

var golden = []aquaTest{
	{"", "1f28ff5fa7c6c76659aad760d1a72561"},
	{"a", "fca44b9b8b01ccf9b4903df2367e5525"},
	{"ab", "e37afe79ae1e3e9cc8cbf60351ef27d1"},
	{"abc", "33073815b22ceeb853d73e7852b57ad7"},
	{"abcd", "0c4b0311576c12c68e507dcb6ef55e45"},
	{"abcdefgh", "28bf06a263f68948119676c603ce0bef"},
	{"abcdefghijklmno", "efa9ce10ec2dcac4f0a36d19921a0e90"},
	{"abcdefghijklmnop", "1509264604cbfe6794422648ad2e9362"},
	{"The quick brown fox jumps over the lazy dog", "a6947f0747493621d1b4dd8935a38a38"},
	{"012345678901234567890123456789012345678901234567890123456789012", "bb42ccd991f5c1ac42f71f51c3463ac1"},
	{"0123456789012345678901234567890123456789012345678901234567890123", "f7b87ee23d750575a3998feec2c42a6e"},
	{"Discard medicine more than two years old. He who has a shady past knows that nice guys finish last.", "75b7223994afa6678031ee262bad4d26"},
}

// Checksums of sequence(n), covering every tail width on both
// sides of the small/large threshold.
var goldenSequence = map[int]string{
	0:    "1f28ff5fa7c6c76659aad760d1a72561",
	1:    "d18d3af797cf5a2dc0793dd8c556aef5",
	2:    "77b3f4ba442245009728c32343d8eb8e",
	3:    "6e742d34d1fa1db6fba82ad13445f109",
	4:    "14117b8194b801d2b215d3b50ef215e8",
	7:    "00fe7fb79bec71ab317e07788af2cf46",
	8:    "5f7dcdfcbd35d24abc87067df80411f7",
	15:   "a6292be84fee266f271fdb6452963e01",
	16:   "a0cfcd6576e88b70f9aa39c48c8505b8",
	17:   "05aedd8f50ca034421b149fddb7fee74",
	31:   "0e46792e11a53e2a7505b72d00183ae2",
	32:   "4afbf48364c6b58bdae900159734c15a",
	33:   "0de7c417bf2f8645180df5d31ce174b2",
	48:   "f9e1306ca72c6422b467402cd6df10ba",
	63:   "36bec2146f7cef91dd2e5310ce2dc98d",
	64:   "cefa35c36985a4733d49755979edee60",
	65:   "c6b4519fac3a6b349161c75ce5f06f47",
	79:   "7b31c193d924b6f68d386c32ec45caa7",
	95:   "df207f31d4f7c3f55666b1d8ba25813f",
	96:   "c1834637ce60ec2881a2486ce984a954",
	100:  "a8e9a3336401c18facd99c05846ae750",
	127:  "78fb54d4be4a3c46d1a1046633435dd9",
	128:  "85107bc8d5671478f7220e0b4a484beb",
	129:  "1b6b24839c5902fffaa4844fc489fe14",
	255:  "6787f8e637fba7f70a8dd12077481ca0",
	256:  "f5808c86b73a87020e82442dd40b7550",
	1000: "595c94d4a28e5213660cfc921cfd3254",
	4095: "c6b19ced0670a24ee3cfa1d44627e12f",
}

var testSeed = SeedFromUint64(0x0123456789abcdef, 0x0fedcba987654321)

var goldenSeeded = map[int]string{
	0:   "c890cada29052bc6b88a5ff50bde8831",
	3:   "257930ea33667a730f0fb7a9eb25c23e",
	63:  "8cecc920e78d44cde37d811a85d8d30d",
	64:  "acefd6494fff971680dc198316d16e8d",
	200: "e724e672e8efa9b78f125d5ebb176cdb",
}

// sequence returns n bytes with byte i set to 7i+3.
func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*7 + 3)
	}
	return b
}

func TestGolden(t *testing.T) {
	for i, g := range golden {
		if got := Hash([]byte(g.in), Seed{}).String(); got != g.want {
			t.Errorf("TestGolden[%d] (len %d), got %v, want %v", i, len(g.in), got, g.want)
		}
	}
}

func TestGoldenSequence(t *testing.T) {
	for n, want := range goldenSequence {
		if got := Hash(sequence(n), Seed{}).String(); got != want {
			t.Errorf("TestGoldenSequence[%d], got %v, want %v", n, got, want)
		}
	}
}

func TestGoldenSeeded(t *testing.T) {
	for n, want := range goldenSeeded {
		if got := Hash(sequence(n), testSeed).String(); got != want {
			t.Errorf("TestGoldenSeeded[%d], got %v, want %v", n, got, want)
		}
	}
}

func TestSeedFromUint64(t *testing.T) {
	want := Seed{
		0x21, 0x43, 0x65, 0x87, 0xa9, 0xcb, 0xed, 0x0f,
		0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01,
	}
	if testSeed != want {
		t.Fatalf("got %x, want %x", testSeed, want)
	}
}

func TestThreshold(t *testing.T) {
	for _, n := range []int{BlockSize - 1, BlockSize} {
		data := sequence(n)
		small, large := SmallKey(data, Seed{}), LargeKey(data, Seed{})
		if small == large {
			t.Fatalf("len %d: small and large key algorithms agree: %v", n, small)
		}
		got := Hash(data, Seed{})
		if n < BlockSize && got != small {
			t.Errorf("len %d: got %v, want small key %v", n, got, small)
		}
		if n >= BlockSize && got != large {
			t.Errorf("len %d: got %v, want large key %v", n, got, large)
		}
	}
}

func TestEmpty(t *testing.T) {
	a, b := Hash(nil, Seed{}), Hash([]byte{}, Seed{})
	if a != b {
		t.Fatalf("nil and empty input differ: %v != %v", a, b)
	}
	if a.String() != golden[0].want {
		t.Fatalf("got %v, want %v", a, golden[0].want)
	}
	if Hash(nil, testSeed) == a {
		t.Fatal("seed does not affect the empty input checksum")
	}
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(0xabad1dea))
	for i := 0; i < 200; i++ {
		data := make([]byte, rng.Intn(1024))
		rng.Read(data)
		if a, b := Hash(data, testSeed), Hash(append([]byte(nil), data...), testSeed); a != b {
			t.Fatalf("len %d: %v != %v", len(data), a, b)
		}
	}
}

func TestSeedSensitivity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 15, 16, 63, 64, 65, 300} {
		data := make([]byte, n)
		rng.Read(data)
		seen := make(map[Sum128]Seed)
		for i := 0; i < 64; i++ {
			var seed Seed
			rng.Read(seed[:])
			s := Hash(data, seed)
			if prev, ok := seen[s]; ok && prev != seed {
				t.Fatalf("len %d: seeds %x and %x collide on %v", n, prev, seed, s)
			}
			seen[s] = seed
		}
	}
}

func TestAvalanche(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5eed))
	total := 0
	const samples = 500
	for i := 0; i < samples; i++ {
		data := make([]byte, 1+rng.Intn(300))
		rng.Read(data)
		a := Hash(data, Seed{})

		bit := rng.Intn(len(data) * 8)
		data[bit/8] ^= 1 << (bit % 8)
		b := Hash(data, Seed{})

		flipped := 0
		for j := range a {
			flipped += bits.OnesCount8(a[j] ^ b[j])
		}
		if flipped <= Size*8/4 {
			t.Errorf("len %d bit %d: only %d output bits changed", len(data), bit, flipped)
		}
		total += flipped
	}
	if mean := float64(total) / samples; mean < 48 {
		t.Errorf("mean of %.1f changed bits, want close to 64", mean)
	}
}

func TestHash64(t *testing.T) {
	s := Hash([]byte("abc"), Seed{})
	if got, want := Hash64([]byte("abc")), binary.LittleEndian.Uint64(s[:8]); got != want {
		t.Fatalf("got %x, want %x", got, want)
	}
}

func TestSum128String(t *testing.T) {
	var s Sum128
	for i := range s {
		s[i] = byte(i * 17)
	}
	if got, want := s.String(), "00112233445566778899aabbccddeeff"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got := fmt.Sprint(Sum128{}); got != "00000000000000000000000000000000" {
		t.Fatalf("got %s", got)
	}
}

func TestPadding(t *testing.T) {
	tail := []byte{0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7}
	cases := []struct {
		name string
		got  [16]byte
		want []byte
	}{
		{"8", pad8(tail), []byte{0xa1, 0xbe, 0x68, 0xb4, 0xc9, 0x02, 0x12, 0xa1, 0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7}},
		{"4", pad4(tail), []byte{0x32, 0xd2, 0x10, 0xd2, 0xf0, 0xf1, 0xf2, 0xf3, 0x92, 0x85, 0x41, 0x05, 0x33, 0x3b, 0x29, 0xb1}},
		{"2", pad2(tail), []byte{0x2e, 0xac, 0xf0, 0xf1, 0x27, 0x95, 0x6c, 0x6a, 0x15, 0x47, 0x7c, 0xb8, 0xb7, 0xc2, 0x3d, 0xbd}},
		{"1", pad1(tail), []byte{0x31, 0xf0, 0xa8, 0xb2, 0x24, 0x3f, 0x86, 0x1e, 0x03, 0xaa, 0xea, 0x74, 0x16, 0xed, 0x96, 0xcc}},
	}
	for _, c := range cases {
		if !bytes.Equal(c.got[:], c.want) {
			t.Errorf("pad%s: got %x, want %x", c.name, c.got, c.want)
		}
	}
}

func benchmarkHash(b *testing.B, size int) {
	input := bytes.Repeat([]byte{0x61}, size)

	b.SetBytes(int64(size))
	b.ReportAllocs()
	b.ResetTimer()

	for j := 0; j < b.N; j++ {
		Hash(input, Seed{})
	}
}

func BenchmarkHash(b *testing.B) {
	for _, size := range []int{8, 31, 63, 64, 256, 1024, 64 * 1024, 1024 * 1024} {
		b.Run(fmt.Sprint(size), func(b *testing.B) {
			benchmarkHash(b, size)
		})
	}
}
