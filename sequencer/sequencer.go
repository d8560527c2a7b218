// Package sequencer arranges rendered sound buffers on a beat-quantized
// timeline and builds the catalog's music tracks.
//
// The timeline buffer is the only mutable state; every note and drum hit is
// rendered by a pure recipe and added into it. Because overlay is plain
// addition, events may be rendered concurrently, as long as the final
// accumulation happens in a fixed order for bit-exact reproducibility.
package sequencer

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/mix"
)

// Errors returned by timeline construction.
var (
	ErrInvalidDuration = errors.New("sequencer: duration must be positive")
	ErrInvalidTempo    = errors.New("sequencer: tempo must be positive")
)

// NoteEvent schedules one melodic note. Events are immutable once scheduled.
type NoteEvent struct {
	Beat  float64 // offset from track start in beats
	Note  int     // MIDI note number
	Beats float64 // duration in beats
	Amp   float64 // amplitude in (0, 1]
}

// Pattern places a rhythmic role on the beat grid: the role fires on step
// index i iff i mod Period is one of Remainders. Step is the grid spacing
// in beats (0 means one step per beat).
type Pattern struct {
	Period     int
	Remainders []int
	Step       float64
	Gain       float64
}

func (p Pattern) step() float64 {
	if p.Step <= 0 {
		return 1
	}
	return p.Step
}

func (p Pattern) fires(i int) bool {
	r := i % p.Period
	for _, want := range p.Remainders {
		if r == want {
			return true
		}
	}
	return false
}

// RenderFunc renders the buffer for one scheduled note.
type RenderFunc func(ev NoteEvent) ([]float64, error)

// Timeline is a fixed-length output buffer with a tempo defining the
// beat-to-sample conversion.
type Timeline struct {
	cfg         core.EngineConfig
	durationSec float64
	bpm         float64
	buf         []float64
}

// NewTimeline creates a silent timeline of the given duration and tempo.
func NewTimeline(durationSec, bpm float64, opts ...core.EngineOption) (*Timeline, error) {
	if durationSec <= 0 {
		return nil, ErrInvalidDuration
	}
	if bpm <= 0 {
		return nil, ErrInvalidTempo
	}

	cfg := core.ApplyEngineOptions(opts...)
	return &Timeline{
		cfg:         cfg,
		durationSec: durationSec,
		bpm:         bpm,
		buf:         make([]float64, cfg.Samples(durationSec)),
	}, nil
}

// SampleOffset converts a beat offset to a sample index:
// round(beat * sampleRate * 60 / bpm).
func (t *Timeline) SampleOffset(beat float64) int {
	return int(math.Round(beat * t.cfg.SampleRate * 60.0 / t.bpm))
}

// SecondsPerBeat converts the tempo to seconds per beat.
func (t *Timeline) SecondsPerBeat() float64 {
	return 60.0 / t.bpm
}

// Overlay adds gain*samples into the timeline starting at a sample offset.
// Samples past the end of the timeline are discarded.
func (t *Timeline) Overlay(samples []float64, offset int, gain float64) {
	mix.Overlay(t.buf, samples, offset, gain)
}

// OverlayAtBeat adds gain*samples into the timeline at a beat offset.
func (t *Timeline) OverlayAtBeat(samples []float64, beat, gain float64) {
	t.Overlay(samples, t.SampleOffset(beat), gain)
}

// ScheduleNotes renders each event and overlays it at its beat offset, in
// event order.
func (t *Timeline) ScheduleNotes(events []NoteEvent, render RenderFunc) error {
	for i, ev := range events {
		buf, err := render(ev)
		if err != nil {
			return fmt.Errorf("sequencer: event %d: %w", i, err)
		}
		t.OverlayAtBeat(buf, ev.Beat, 1.0)
	}
	return nil
}

// ScheduleNotesParallel renders events on up to workers goroutines, then
// overlays the results in event-index order. Floating-point addition is not
// associative, so the fixed fold order is what keeps parallel runs
// bit-identical to serial ones.
func (t *Timeline) ScheduleNotesParallel(events []NoteEvent, workers int, render RenderFunc) error {
	if workers <= 1 || len(events) <= 1 {
		return t.ScheduleNotes(events, render)
	}

	rendered := make([][]float64, len(events))
	errs := make([]error, len(events))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i := range events {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			rendered[i], errs[i] = render(events[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("sequencer: event %d: %w", i, err)
		}
	}
	for i, ev := range events {
		t.OverlayAtBeat(rendered[i], ev.Beat, 1.0)
	}
	return nil
}

// ScheduleDrums overlays one pre-rendered hit at every grid step where the
// pattern fires. The step count covers the whole timeline duration.
func (t *Timeline) ScheduleDrums(p Pattern, hit []float64) {
	if p.Period <= 0 {
		return
	}
	steps := int(t.durationSec * t.bpm / 60.0 / p.step())
	for i := range steps {
		if p.fires(i) {
			t.OverlayAtBeat(hit, float64(i)*p.step(), p.Gain)
		}
	}
}

// Buffer returns the timeline's sample buffer.
func (t *Timeline) Buffer() []float64 {
	return t.buf
}

// Config returns the timeline's engine configuration.
func (t *Timeline) Config() core.EngineConfig {
	return t.cfg
}
