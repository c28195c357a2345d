package main

//go:generate go run gen.go -out ../aesenc_amd64.s -stubs ../aesenc_amd64.go -pkg aquahash

import (
	"github.com/mmcloughlin/avo/attr"
	x "github.com/mmcloughlin/avo/build"
	"github.com/mmcloughlin/avo/buildtags"
	o "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

func main() {
	x.Constraint(buildtags.Not("appengine").ToConstraint())
	x.Constraint(buildtags.Not("noasm").ToConstraint())
	x.Constraint(buildtags.Term("gc").ToConstraint())

	aesenc()
	blocks()

	x.Generate()
}

// One AES round: dst = aesenc(src, key)
func aesenc() {
	x.TEXT("aesencAsm", attr.NOSPLIT, "func(dst, src, key *[16]byte)")
	x.Doc("aesencAsm computes one AES encryption round of src keyed by key into dst.")
	x.Pragma("noescape")

	src := x.Load(x.Param("src"), x.GP64())
	key := x.Load(x.Param("key"), x.GP64())
	dst := x.Load(x.Param("dst"), x.GP64())

	s, k := x.XMM(), x.XMM()
	x.MOVOU(o.Mem{Base: src}, s)
	x.MOVOU(o.Mem{Base: key}, k)
	x.AESENC(k, s)
	x.MOVOU(s, o.Mem{Base: dst})
	x.RET()
}

// Bulk loop over 64-byte blocks, one 16-byte sub-block per lane.
// The lanes stay in registers for the whole loop.
func blocks() {
	x.TEXT("blocksAsm", attr.NOSPLIT, "func(lanes *[4][16]byte, p []byte)")
	x.Doc("blocksAsm mixes the 64-byte blocks of p into the four lanes.")
	x.Pragma("noescape")

	lanes := x.Load(x.Param("lanes"), x.GP64())
	src := x.Load(x.Param("p").Base(), x.GP64())
	n := x.Load(x.Param("p").Len(), x.GP64())

	x.SHRQ(o.U8(6), n)
	x.JZ(o.LabelRef("end"))

	var lane [4]reg.VecVirtual
	for i := range lane {
		lane[i] = x.XMM()
		x.MOVOU(o.Mem{Base: lanes, Disp: 16 * i}, lane[i])
	}

	x.Label("loop")
	var block [4]reg.VecVirtual
	for i := range block {
		block[i] = x.XMM()
		x.MOVOU(o.Mem{Base: src, Disp: 16 * i}, block[i])
	}
	for i := range lane {
		x.AESENC(block[i], lane[i])
	}
	x.ADDQ(o.U8(64), src)
	x.DECQ(n)
	x.JNZ(o.LabelRef("loop"))

	for i := range lane {
		x.MOVOU(lane[i], o.Mem{Base: lanes, Disp: 16 * i})
	}

	x.Label("end")
	x.RET()
}
