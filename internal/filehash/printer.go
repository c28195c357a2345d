// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package filehash

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes checksum lines in the "<hex>  <path>" format of the
// coreutils *sum tools.
type Printer struct {
	w      io.Writer
	digest *color.Color
	path   *color.Color
}

// NewPrinter returns a Printer writing to w. With colored set the
// digest is printed in bold green and the path in bold blue, even if w
// is not a terminal.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:      w,
		digest: color.New(color.FgGreen, color.Bold),
		path:   color.New(color.FgBlue, color.Bold),
	}
	if colored {
		p.digest.EnableColor()
		p.path.EnableColor()
	} else {
		p.digest.DisableColor()
		p.path.DisableColor()
	}
	return p
}

// Print writes the line for sum of path.
func (p *Printer) Print(sum []byte, path string) error {
	_, err := fmt.Fprintf(p.w, "%s  %s\n", p.digest.Sprint(hex.EncodeToString(sum)), p.path.Sprint(path))
	return err
}
