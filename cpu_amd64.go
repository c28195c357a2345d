//go:build !appengine && !noasm && gc

// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package aquahash

import (
	"github.com/klauspost/cpuid/v2"
)

var hasAESNI bool

func init() {
	hasAESNI = cpuid.CPU.Supports(cpuid.AESNI, cpuid.SSE2)
	if hasAESNI {
		implementation = "aesni"
		aesenc = aesencAsm
		blocks = blocksAsm
	}
}
