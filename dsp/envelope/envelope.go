// Package envelope provides amplitude-shaping functions for synthesized
// buffers: linear attack/release fades, exponential percussive envelopes,
// and a half-sine window for sweeps.
package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// AttackRelease multiplies the first attackSec of buf by a linear ramp from
// 0 to 1 and the last releaseSec by a ramp from 1 to 0, suppressing clicks
// at buffer boundaries. The buffer is shaped in place and returned.
//
// Callers must size the buffer so attack and release do not overlap; the
// ramps are clipped to the buffer length if they do.
func AttackRelease(buf []float64, attackSec, releaseSec, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("envelope: sample rate must be > 0: %f", sampleRate)
	}
	if attackSec < 0 || releaseSec < 0 {
		return nil, fmt.Errorf("envelope: attack and release must be >= 0: %f, %f", attackSec, releaseSec)
	}

	n := len(buf)
	attack := int(attackSec * sampleRate)
	release := int(releaseSec * sampleRate)
	if attack > n {
		attack = n
	}
	if release > n {
		release = n
	}

	for i := range attack {
		buf[i] *= float64(i) / float64(attack)
	}
	for i := range release {
		buf[n-release+i] *= float64(release-i) / float64(release)
	}
	return buf, nil
}

// ExpDecay returns a percussive envelope function
//
//	env(t) = exp(-t*decayRate) * (1 - exp(-t*attackRate))
//
// which rises from 0 with a fast attack and decays toward 0 without ever
// re-rising. Typical attack rates are one to two orders of magnitude above
// the decay rate.
func ExpDecay(decayRate, attackRate float64) func(t float64) float64 {
	return func(t float64) float64 {
		return math.Exp(-t*decayRate) * (1 - math.Exp(-t*attackRate))
	}
}

// HannShape multiplies buf in place by sin(pi*t/duration), a half-sine
// window that is zero at both endpoints by construction. Used for
// sweep-style sounds. Returns the shaped buffer.
func HannShape(buf []float64) []float64 {
	n := len(buf)
	if n == 0 {
		return buf
	}

	coeffs := make([]float64, n)
	for i := range coeffs {
		coeffs[i] = math.Sin(math.Pi * float64(i) / float64(n))
	}
	vecmath.MulBlockInPlace(buf, coeffs)
	return buf
}

// ApplyFunc multiplies buf in place by env evaluated at each sample's
// elapsed time and returns the shaped buffer.
func ApplyFunc(buf []float64, sampleRate float64, env func(t float64) float64) []float64 {
	for i := range buf {
		buf[i] *= env(float64(i) / sampleRate)
	}
	return buf
}
