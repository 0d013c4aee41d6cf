// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dump

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hevckit/rom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	var vectors = []struct {
		path string
		want Format
	}{
		{"tables.txt", FormatText},
		{"tables", FormatText},
		{"out/tables.txt.zst", FormatZstd},
		{"tables.ZSTD", FormatZstd},
		{"tables.txt.xz", FormatXZ},
		{"tables.xz.txt", FormatText},
	}
	for i, v := range vectors {
		if got := FormatFromPath(v.path); got != v.want {
			t.Errorf("test %d, FormatFromPath(%q): got %v, want %v", i, v.path, got, v.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	tab := rom.New(rom.DefaultGeometry)
	var want bytes.Buffer
	require.NoError(t, rom.Dump(&want, tab))

	for _, f := range []Format{FormatText, FormatZstd, FormatXZ} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, tab, f))
			if f != FormatText {
				assert.Less(t, buf.Len(), want.Len(), "compressed listing is not smaller")
			}

			rd, err := NewReader(&buf, f)
			require.NoError(t, err)
			got, err := io.ReadAll(rd)
			require.NoError(t, err)
			require.NoError(t, rd.Close())
			if diff := cmp.Diff(want.String(), string(got)); diff != "" {
				t.Errorf("listing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnknownFormat(t *testing.T) {
	tab := rom.New(rom.Geometry{MaxCUSize: 8, UnitSize: 4})
	assert.Equal(t, Error("unknown format"), Write(io.Discard, tab, Format(9)))
	_, err := NewReader(bytes.NewReader(nil), Format(9))
	assert.Equal(t, Error("unknown format"), err)
	assert.Equal(t, "unknown", Format(9).String())
}
