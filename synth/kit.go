// Package synth provides the catalog of procedural sound recipes: engine
// drones, ambience beds, percussion, keys, and interface effects.
//
// Every recipe is a pure function of its parameters. Noise is always drawn
// from explicitly seeded streams, so a recipe called twice with the same
// arguments produces a bit-identical buffer. No state survives a call.
package synth

import (
	"errors"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// ErrInvalidDuration is returned when a recipe is asked for a non-positive
// duration.
var ErrInvalidDuration = errors.New("synth: duration must be positive")

// Noise seeds for the catalog. Each layer of each recipe owns a distinct
// stream; seeds are threaded explicitly into every noise call rather than
// held in any shared generator state.
const (
	seedBiplaneJitter int64 = 1
	seedBiplaneRumble int64 = 2
	seedPropFloor     int64 = 4
	seedBomberRumble  int64 = 5
	seedJetBroadband  int64 = 6
	seedJetRumble     int64 = 7
	seedRocketRoar    int64 = 8
	seedRocketCrackle int64 = 9
	seedWindLow       int64 = 10
	seedWindMid       int64 = 11
	seedHatNoise      int64 = 20
	seedSnareNoise    int64 = 25
	seedClickNoise    int64 = 30
	seedWhooshNoise   int64 = 35
	seedBoostNoise    int64 = 40
)

// Kit renders the sound catalog for one engine configuration.
type Kit struct {
	cfg core.EngineConfig
}

// NewKit creates a kit with the given engine options applied over the
// 44100 Hz defaults.
func NewKit(opts ...core.EngineOption) *Kit {
	return &Kit{cfg: core.ApplyEngineOptions(opts...)}
}

// Config returns the kit's engine configuration.
func (k *Kit) Config() core.EngineConfig {
	return k.cfg
}

// samples validates durationSec and converts it to a buffer length.
func (k *Kit) samples(durationSec float64) (int, error) {
	n := k.cfg.Samples(durationSec)
	if n <= 0 {
		return 0, ErrInvalidDuration
	}
	return n, nil
}
