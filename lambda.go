// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rom

import "github.com/hevckit/rom/internal"

// Quantizer limits.
const (
	MaxQP                    = 69 // Largest quantization parameter with a lambda entry
	MaxChromaLambdaOffset    = 36 // Largest index into the chroma lambda offsets
	ChromaQPMappingTableSize = 70 // Entries in the luma to chroma QP map
)

// lambdaTab[qp] is 2^(qp/6 - 2) rounded to four decimals.
var lambdaTab = [MaxQP + 1]float64{
	0.2500, 0.2806, 0.3150, 0.3536, 0.3969,
	0.4454, 0.5000, 0.5612, 0.6300, 0.7071,
	0.7937, 0.8909, 1.0000, 1.1225, 1.2599,
	1.4142, 1.5874, 1.7818, 2.0000, 2.2449,
	2.5198, 2.8284, 3.1748, 3.5636, 4.0000,
	4.4898, 5.0397, 5.6569, 6.3496, 7.1272,
	8.0000, 8.9797, 10.0794, 11.3137, 12.6992,
	14.2544, 16.0000, 17.9594, 20.1587, 22.6274,
	25.3984, 28.5088, 32.0000, 35.9188, 40.3175,
	45.2548, 50.7968, 57.0175, 64.0000, 71.8376,
	80.6349, 90.5097, 101.5937, 114.0350, 128.0000,
	143.6751, 161.2699, 181.0193, 203.1873, 228.0701,
	256.0000, 287.3503, 322.5398, 362.0387, 406.3747,
	456.1401, 512.0000, 574.7006, 645.0796, 724.0773,
}

// lambda2Tab[qp] is 0.85 * 2^(qp/3 - 4) to within 0.1%.
var lambda2Tab = [MaxQP + 1]float64{
	0.0531, 0.0669, 0.0843, 0.1063, 0.1339,
	0.1687, 0.2125, 0.2677, 0.3373, 0.4250,
	0.5355, 0.6746, 0.8500, 1.0709, 1.3493,
	1.7000, 2.1419, 2.6986, 3.4000, 4.2837,
	5.3970, 6.8000, 8.5675, 10.7943, 13.6000,
	17.1345, 21.5887, 27.2004, 34.2699, 43.1773,
	54.4000, 68.5397, 86.3551, 108.7998, 137.0792,
	172.7097, 217.6000, 274.1590, 345.4172, 435.1993,
	548.3169, 690.8389, 870.4000, 1096.6362, 1381.6757,
	1740.7974, 2193.2676, 2763.3460, 3481.6000, 4386.5446,
	5526.6890, 6963.2049, 8773.0879, 11053.3840, 13926.4000,
	17546.1542, 22106.7835, 27852.7889, 35092.3170, 44213.5749,
	55705.6000, 70184.6657, 88427.1342, 111411.2172, 140369.3373,
	176854.2222, 222822.4000, 280738.6627, 353708.5368, 445644.7459,
}

// chromaLambda2OffsetTab[i] is 256 * 2^((i-12)/3), saturated to 16 bits.
var chromaLambda2OffsetTab = [MaxChromaLambdaOffset + 1]uint16{
	16, 20, 25, 32, 40, 50,
	64, 80, 101, 128, 161, 203,
	256, 322, 406, 512, 645, 812,
	1024, 1290, 1625, 2048, 2580, 3250,
	4096, 5160, 6501, 8192, 10321, 13003,
	16384, 20642, 26007, 32768, 41285, 52015,
	65535,
}

var chromaScaleTab = [ChromaQPMappingTableSize]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14,
	15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	29, 30, 31, 32, 33, 33, 34, 34, 35, 35, 36, 36, 37, 37, 38,
	39, 40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 51, 51,
	51, 51, 51, 51, 51, 51, 51, 51, 51, 51,
}

// Lambda returns the rate-distortion multiplier for a quantization parameter.
func Lambda(qp int) float64 {
	if internal.Debug && uint(qp) > MaxQP {
		panic(Error("qp out of range"))
	}
	return lambdaTab[qp]
}

// Lambda2 returns the squared rate-distortion multiplier, scaled for
// sum-of-squared-error distortion.
func Lambda2(qp int) float64 {
	if internal.Debug && uint(qp) > MaxQP {
		panic(Error("qp out of range"))
	}
	return lambda2Tab[qp]
}

// ChromaLambda2Offset returns the fixed-point (8 fractional bits) weight
// applied to chroma distortion for a chroma QP offset index.
func ChromaLambda2Offset(i int) uint16 {
	if internal.Debug && uint(i) > MaxChromaLambdaOffset {
		panic(Error("chroma lambda offset out of range"))
	}
	return chromaLambda2OffsetTab[i]
}

// ChromaScale maps a luma QP to the chroma QP used for 4:2:0 content.
func ChromaScale(qp int) uint8 {
	if internal.Debug && uint(qp) >= ChromaQPMappingTableSize {
		panic(Error("qp out of range"))
	}
	return chromaScaleTab[qp]
}
