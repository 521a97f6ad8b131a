package util

import (
	"github.com/matt-g-everett/motiontx/motion"
)

// GenerateLut samples an ease into a symmetric rise-and-fall table, handy
// for hosts that drive brightness pulses straight from a frame index.
func GenerateLut(e motion.Ease, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = e(value)
		lut[j] = e(value)
	}
	return lut
}
