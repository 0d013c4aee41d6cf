// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dump writes the text listing of the ROM tables, optionally
// compressed, so that table contents can be archived and compared.
package dump

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/hevckit/rom"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "dump: " + string(e) }

type Format int

const (
	FormatText Format = iota
	FormatZstd
	FormatXZ
)

func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatZstd:
		return "zstd"
	case FormatXZ:
		return "xz"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format implied by the extension of path.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return FormatZstd
	case ".xz":
		return FormatXZ
	default:
		return FormatText
	}
}

// Write writes the listing of t to w in the given format.
func Write(w io.Writer, t *rom.Tables, f Format) error {
	switch f {
	case FormatText:
		return rom.Dump(w, t)
	case FormatZstd:
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		if err := rom.Dump(zw, t); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	case FormatXZ:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return err
		}
		if err := rom.Dump(xw, t); err != nil {
			xw.Close()
			return err
		}
		return xw.Close()
	default:
		return Error("unknown format")
	}
}

// NewReader returns a reader of the text listing stored in r.
func NewReader(r io.Reader, f Format) (io.ReadCloser, error) {
	switch f {
	case FormatText:
		return io.NopCloser(r), nil
	case FormatZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case FormatXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xr), nil
	default:
		return nil, Error("unknown format")
	}
}
