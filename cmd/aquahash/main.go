// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Command aquahash prints the AquaHash or xxHash64 checksum of files.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/minio/aquahash"
	"github.com/minio/aquahash/internal/filehash"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var errFilesFailed = errors.New("one or more files could not be hashed")

func init() {
	// -v is --verbose
	cli.VersionFlag = cli.BoolFlag{Name: "version", Usage: "print the version"}
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// run executes the command line args and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(ctx, stdout, stderr)
	if err := app.Run(args); err != nil {
		if !errors.Is(err, errFilesFailed) {
			fmt.Fprintf(stderr, "aquahash: %v\n", err)
		}
		return 1
	}
	return 0
}

func newApp(ctx context.Context, stdout, stderr io.Writer) *cli.App {
	log := logrus.New()
	log.SetOutput(stderr)

	app := cli.NewApp()
	app.Name = "aquahash"
	app.Usage = "print AquaHash checksums of files"
	app.UsageText = "aquahash [options] file..."
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  "display verbose information",
			EnvVar: "AQUAHASH_VERBOSE",
		},
		cli.BoolFlag{
			Name:   "color",
			Usage:  "use color text",
			EnvVar: "AQUAHASH_COLOR",
		},
		cli.BoolFlag{
			Name:   "aquahash",
			Usage:  "use the AquaHash algorithm (default)",
			EnvVar: "AQUAHASH_AQUAHASH",
		},
		cli.BoolFlag{
			Name:   "xxhash",
			Usage:  "use the xxHash64 algorithm",
			EnvVar: "AQUAHASH_XXHASH",
		},
		cli.StringFlag{
			Name:   "seed",
			Usage:  "AquaHash seed as 32 hex characters",
			EnvVar: "AQUAHASH_SEED",
		},
		cli.IntFlag{
			Name:   "jobs, j",
			Usage:  "number of files hashed in parallel",
			Value:  1,
			EnvVar: "AQUAHASH_JOBS",
		},
		cli.IntFlag{
			Name:   "buffer-size",
			Usage:  "read buffer size in bytes",
			Value:  filehash.DefaultBufferSize,
			EnvVar: "AQUAHASH_BUFFER_SIZE",
		},
		cli.StringFlag{
			Name:   "log-level",
			Usage:  "log level: debug,info,warning,error",
			Value:  "info",
			EnvVar: "AQUAHASH_LOG_LEVEL",
		},
	}

	app.Before = func(c *cli.Context) error {
		lv, err := logrus.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}
		if c.Bool("verbose") && lv < logrus.DebugLevel {
			lv = logrus.DebugLevel
		}
		log.SetLevel(lv)
		return nil
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no input files")
		}

		alg, err := algorithm(c, log)
		if err != nil {
			return err
		}
		jobs, bufSize := c.Int("jobs"), c.Int("buffer-size")
		if jobs < 1 {
			return fmt.Errorf("invalid number of jobs %d", jobs)
		}
		if bufSize < 1 {
			return fmt.Errorf("invalid buffer size %d", bufSize)
		}

		log.WithFields(logrus.Fields{
			"verbose":     c.Bool("verbose"),
			"color":       c.Bool("color"),
			"algorithm":   alg.Name(),
			"jobs":        jobs,
			"buffer_size": bufSize,
			"files":       c.NArg(),
		}).Debug("parameters")

		pool := filehash.Pool{
			Reader: filehash.Reader{Algorithm: alg, BufferSize: bufSize},
			Jobs:   jobs,
		}
		printer := filehash.NewPrinter(stdout, c.Bool("color"))

		failed := 0
		pool.Each(ctx, c.Args(), func(r filehash.Result) {
			if r.Err == nil {
				r.Err = printer.Print(r.Sum, r.Path)
			}
			if r.Err != nil {
				log.WithFields(logrus.Fields{"file": r.Path, "error": r.Err}).Error("cannot hash file")
				failed++
			}
		})
		if failed > 0 {
			return errFilesFailed
		}
		return nil
	}
	return app
}

// algorithm resolves the --aquahash, --xxhash and --seed flags.
func algorithm(c *cli.Context, log logrus.FieldLogger) (filehash.Algorithm, error) {
	if c.Bool("xxhash") && c.Bool("aquahash") {
		return nil, errors.New("--aquahash and --xxhash are mutually exclusive")
	}

	seed, err := parseSeed(c.String("seed"))
	if err != nil {
		return nil, err
	}
	if c.Bool("xxhash") {
		if c.IsSet("seed") {
			log.Warn("--seed is ignored by xxhash")
		}
		return filehash.XXHash(), nil
	}
	return filehash.AquaHash(seed), nil
}

// parseSeed decodes a seed written as 32 hex characters. The empty
// string is the zero seed.
func parseSeed(s string) (seed aquahash.Seed, err error) {
	if s == "" {
		return seed, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return seed, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	if len(b) != len(seed) {
		return seed, fmt.Errorf("invalid seed %q: want %d hex characters", s, 2*len(seed))
	}
	copy(seed[:], b)
	return seed, nil
}
