// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package filehash

import (
	"context"

	"github.com/remeh/sizedwaitgroup"
)

// Result is the checksum of one file, or the error that prevented it.
type Result struct {
	Path string
	Sum  []byte
	Err  error
}

// Pool hashes lists of files with a bounded number of workers.
type Pool struct {
	Reader Reader
	Jobs   int // files hashed at once, at least 1
}

// Hash returns one Result per path, in the order of paths.
func (p Pool) Hash(ctx context.Context, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	p.Each(ctx, paths, func(r Result) {
		results = append(results, r)
	})
	return results
}

// Each calls fn with the Result of every path, in the order of paths,
// as soon as that file and all files before it are done. Paths not
// started before ctx is done report the context error.
func (p Pool) Each(ctx context.Context, paths []string, fn func(Result)) {
	jobs := p.Jobs
	if jobs < 1 {
		jobs = 1
	}

	// One buffered channel per path so workers never block on a slow
	// consumer.
	outputs := make([]chan Result, len(paths))
	for i := range outputs {
		outputs[i] = make(chan Result, 1)
	}

	go func() {
		swg := sizedwaitgroup.New(jobs)
		for i, path := range paths {
			err := ctx.Err()
			if err == nil {
				err = swg.AddWithContext(ctx)
			}
			if err != nil {
				outputs[i] <- Result{Path: path, Err: err}
				continue
			}
			go func(path string, out chan<- Result) {
				defer swg.Done()
				sum, err := p.Reader.File(path)
				out <- Result{Path: path, Sum: sum, Err: err}
			}(path, outputs[i])
		}
		swg.Wait()
	}()

	for _, out := range outputs {
		fn(<-out)
	}
}
