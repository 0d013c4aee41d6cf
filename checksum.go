// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	hashutil "github.com/dsnet/golib/hashmerge"
)

// Checksum returns the CRC-32 (IEEE) of every table in t and every literal
// table, serialized in little-endian order one after another.
// It identifies the exact table contents an encoder was built against.
func (t *Tables) Checksum() uint32 {
	var crc uint32
	var buf []byte
	for _, nt := range t.all() {
		buf = appendTable(buf[:0], nt.obj)
		crc = hashutil.CombineCRC32(crc32.IEEE, crc, crc32.ChecksumIEEE(buf), int64(len(buf)))
	}
	return crc
}

func appendTable(b []byte, obj interface{}) []byte {
	switch v := obj.(type) {
	case []uint8:
		b = append(b, v...)
	case []int8:
		for _, x := range v {
			b = append(b, uint8(x))
		}
	case []uint16:
		for _, x := range v {
			b = binary.LittleEndian.AppendUint16(b, x)
		}
	case []uint32:
		for _, x := range v {
			b = binary.LittleEndian.AppendUint32(b, x)
		}
	case []int:
		for _, x := range v {
			b = binary.LittleEndian.AppendUint64(b, uint64(x))
		}
	case []float64:
		for _, x := range v {
			b = binary.LittleEndian.AppendUint64(b, math.Float64bits(x))
		}
	case [][]int16:
		for _, r := range v {
			for _, x := range r {
				b = binary.LittleEndian.AppendUint16(b, uint16(x))
			}
		}
	case [][]uint16:
		for _, r := range v {
			b = appendTable(b, r)
		}
	case [][4]uint8:
		for _, r := range v {
			b = append(b, r[:]...)
		}
	default:
		panic(Error("unknown table type")) // This should never occur
	}
	return b
}
