// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLambda(t *testing.T) {
	assert.Equal(t, 0.25, Lambda(0))
	assert.Equal(t, 0.5, Lambda(6))
	assert.InDelta(t, 0.0531, Lambda2(0), 1e-4)

	for qp := 0; qp <= MaxQP; qp++ {
		want := math.Pow(2, float64(qp)/6-2)
		if got := Lambda(qp); math.Abs(got-want) > 1e-4 {
			t.Errorf("Lambda(%d): got %v, want %v", qp, got, want)
		}
		want2 := want * want * 0.85
		if got := Lambda2(qp); math.Abs(got-want2) > 5e-5+want2*1e-3 {
			t.Errorf("Lambda2(%d): got %v, want %v", qp, got, want2)
		}
		if qp > 0 && Lambda(qp) <= Lambda(qp-1) {
			t.Errorf("Lambda(%d) = %v is not above Lambda(%d) = %v", qp, Lambda(qp), qp-1, Lambda(qp-1))
		}
	}

	// Every sixth QP doubles lambda exactly.
	for qp := 0; qp+6 <= MaxQP; qp += 6 {
		assert.Equal(t, 2*Lambda(qp), Lambda(qp+6), "qp %d", qp)
	}
}

func TestChromaLambda2Offset(t *testing.T) {
	assert.Equal(t, uint16(16), ChromaLambda2Offset(0))
	assert.Equal(t, uint16(256), ChromaLambda2Offset(12))
	assert.Equal(t, uint16(65535), ChromaLambda2Offset(MaxChromaLambdaOffset))

	// Three steps double the weight, up to rounding.
	for i := 0; i+3 < MaxChromaLambdaOffset; i++ {
		d := int(ChromaLambda2Offset(i+3)) - 2*int(ChromaLambda2Offset(i))
		if d < -1 || d > 1 {
			t.Errorf("ChromaLambda2Offset(%d) = %d is not twice ChromaLambda2Offset(%d) = %d",
				i+3, ChromaLambda2Offset(i+3), i, ChromaLambda2Offset(i))
		}
	}
}

func TestChromaScale(t *testing.T) {
	for qp := 0; qp < 30; qp++ {
		assert.Equal(t, uint8(qp), ChromaScale(qp), "qp %d", qp)
	}
	var vectors = []struct {
		qp   int
		want uint8
	}{
		{30, 29}, {34, 33}, {35, 33}, {43, 37}, {44, 38}, {57, 51}, {58, 51}, {69, 51},
	}
	for i, v := range vectors {
		if got := ChromaScale(v.qp); got != v.want {
			t.Errorf("test %d, ChromaScale(%d): got %d, want %d", i, v.qp, got, v.want)
		}
	}
	for qp := 1; qp < ChromaQPMappingTableSize; qp++ {
		d := int(ChromaScale(qp)) - int(ChromaScale(qp-1))
		if d < 0 || d > 1 {
			t.Errorf("ChromaScale steps by %d at qp %d", d, qp)
		}
	}
}
