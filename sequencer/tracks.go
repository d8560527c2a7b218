package sequencer

import (
	"runtime"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/effects"
	"github.com/cwbudde/algo-synth/dsp/envelope"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/synth"
)

// trackPeak is the normalization target for finished music mixes, slightly
// below the sound-effect peak to leave headroom under gameplay audio.
const trackPeak = 0.80

// renderTrack overlays melody, bass, and drum layers onto a fresh timeline,
// then applies the lo-fi master chain shared by all tracks.
func renderTrack(
	kit *synth.Kit,
	durationSec, bpm float64,
	melody, bass []NoteEvent,
	kick, snare Pattern,
	hats []Pattern,
	openHat bool,
) ([]float64, error) {
	cfg := kit.Config()
	t, err := NewTimeline(durationSec, bpm,
		core.WithSampleRate(cfg.SampleRate),
		core.WithTargetPeak(cfg.TargetPeak),
	)
	if err != nil {
		return nil, err
	}

	render := func(ev NoteEvent) ([]float64, error) {
		return kit.PianoNote(synth.NoteToFreq(ev.Note), ev.Beats*t.SecondsPerBeat(), ev.Amp)
	}
	workers := runtime.NumCPU()
	if err := t.ScheduleNotesParallel(melody, workers, render); err != nil {
		return nil, err
	}
	if err := t.ScheduleNotesParallel(bass, workers, render); err != nil {
		return nil, err
	}

	kickHit, err := kit.Kick(0.25)
	if err != nil {
		return nil, err
	}
	t.ScheduleDrums(kick, kickHit)

	snareHit, err := kit.Snare(0.15)
	if err != nil {
		return nil, err
	}
	t.ScheduleDrums(snare, snareHit)

	hatDur := 0.08
	if openHat {
		hatDur = 0.15
	}
	hatHit, err := kit.HiHat(hatDur, openHat)
	if err != nil {
		return nil, err
	}
	for _, p := range hats {
		t.ScheduleDrums(p, hatHit)
	}

	lofi, err := effects.NewLoFi(cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	out, err := lofi.Process(t.Buffer())
	if err != nil {
		return nil, err
	}

	if _, err := envelope.AttackRelease(out, 0.1, 0.1, cfg.SampleRate); err != nil {
		return nil, err
	}
	return signal.Normalize(out, trackPeak), nil
}

// LofiTrack01 renders a 12 second chill beat: C major pentatonic melody in
// 4/4 at 75 BPM over an alternating kick/snare backbeat and half-beat hats.
func LofiTrack01(kit *synth.Kit) ([]float64, error) {
	melody := []NoteEvent{
		{0, 72, 1.0, 0.6},    // C5
		{1, 69, 0.5, 0.5},    // A4
		{1.5, 67, 0.5, 0.5},  // G4
		{2, 64, 1.0, 0.55},   // E4
		{3, 67, 0.5, 0.5},    // G4
		{3.5, 69, 0.5, 0.5},  // A4
		{4, 72, 1.5, 0.6},    // C5
		{5.5, 67, 0.5, 0.5},  // G4
		{6, 64, 1.0, 0.55},   // E4
		{7, 60, 1.0, 0.5},    // C4
		{8, 69, 0.75, 0.55},  // A4
		{9, 67, 0.5, 0.5},    // G4
		{9.5, 64, 0.5, 0.5},  // E4
		{10, 72, 1.0, 0.6},   // C5
		{11, 69, 1.0, 0.55},  // A4
	}
	bass := []NoteEvent{
		{0, 48, 1.0, 0.45},  // C3
		{2, 43, 1.0, 0.40},  // G2
		{4, 48, 1.0, 0.45},  // C3
		{6, 45, 1.0, 0.40},  // A2
		{8, 48, 1.0, 0.45},  // C3
		{10, 43, 1.0, 0.40}, // G2
	}

	return renderTrack(kit, 12.0, 75.0, melody, bass,
		Pattern{Period: 2, Remainders: []int{0}, Gain: 0.6},
		Pattern{Period: 2, Remainders: []int{1}, Gain: 0.5},
		[]Pattern{
			{Period: 2, Remainders: []int{0}, Step: 0.5, Gain: 0.35},
			{Period: 2, Remainders: []int{1}, Step: 0.5, Gain: 0.20},
		},
		false,
	)
}

// LofiTrack02 renders a 13 second half-time beat: A minor pentatonic at
// 68 BPM with open hats on the off-beats.
func LofiTrack02(kit *synth.Kit) ([]float64, error) {
	melody := []NoteEvent{
		{0, 69, 1.0, 0.6},     // A4
		{1, 67, 0.5, 0.5},     // G4
		{1.5, 64, 0.5, 0.5},   // E4
		{2, 62, 1.5, 0.55},    // D4
		{3.5, 60, 0.5, 0.5},   // C4
		{4, 64, 1.0, 0.6},     // E4
		{5, 67, 0.75, 0.55},   // G4
		{5.75, 69, 1.25, 0.6}, // A4
		{7, 64, 1.0, 0.55},    // E4
		{8, 60, 0.5, 0.5},     // C4
		{8.5, 62, 0.5, 0.5},   // D4
		{9, 67, 1.0, 0.55},    // G4
		{10, 69, 1.5, 0.6},    // A4
		{11.5, 67, 1.5, 0.5},  // G4
	}
	bass := []NoteEvent{
		{0, 45, 1.5, 0.45},  // A2
		{2, 43, 1.0, 0.40},  // G2
		{4, 45, 1.5, 0.45},  // A2
		{6, 40, 1.0, 0.40},  // E2
		{8, 45, 1.5, 0.45},  // A2
		{10, 43, 1.0, 0.40}, // G2
	}

	return renderTrack(kit, 13.0, 68.0, melody, bass,
		Pattern{Period: 4, Remainders: []int{0, 2}, Gain: 0.65},
		Pattern{Period: 4, Remainders: []int{2}, Gain: 0.55},
		[]Pattern{
			{Period: 2, Remainders: []int{1}, Gain: 0.30},
		},
		true,
	)
}

// LofiTrack03 renders a 14 second track: F major pentatonic at 80 BPM with
// a more syncopated kick and ghosted half-beat hats.
func LofiTrack03(kit *synth.Kit) ([]float64, error) {
	melody := []NoteEvent{
		{0, 72, 0.75, 0.6},     // C5
		{0.75, 74, 0.5, 0.55},  // D5
		{1.25, 72, 0.5, 0.5},   // C5
		{1.75, 69, 0.75, 0.55}, // A4
		{2.5, 67, 0.5, 0.5},    // G4
		{3, 65, 1.0, 0.6},      // F4
		{4, 69, 0.5, 0.55},     // A4
		{4.5, 72, 1.0, 0.6},    // C5
		{5.5, 74, 0.75, 0.55},  // D5
		{6.25, 72, 0.5, 0.5},   // C5
		{6.75, 67, 0.75, 0.55}, // G4
		{7.5, 65, 0.5, 0.5},    // F4
		{8, 72, 1.0, 0.6},      // C5
		{9, 69, 0.5, 0.55},     // A4
		{9.5, 67, 0.5, 0.5},    // G4
		{10, 65, 1.5, 0.6},     // F4
		{11.5, 67, 0.5, 0.5},   // G4
		{12, 69, 1.0, 0.55},    // A4
		{13, 65, 1.0, 0.5},     // F4
	}
	bass := []NoteEvent{
		{0, 53, 1.0, 0.45},  // F2
		{2, 55, 1.0, 0.40},  // G2
		{4, 53, 1.0, 0.45},  // F2
		{6, 57, 1.0, 0.40},  // A2
		{8, 53, 1.0, 0.45},  // F2
		{10, 55, 1.0, 0.40}, // G2
		{12, 53, 2.0, 0.45}, // F2
	}

	return renderTrack(kit, 14.0, 80.0, melody, bass,
		Pattern{Period: 4, Remainders: []int{0, 3}, Gain: 0.60},
		Pattern{Period: 4, Remainders: []int{1, 2}, Gain: 0.45},
		[]Pattern{
			{Period: 4, Remainders: []int{0, 2}, Step: 0.5, Gain: 0.30},
			{Period: 4, Remainders: []int{1, 3}, Step: 0.5, Gain: 0.18},
		},
		false,
	)
}
