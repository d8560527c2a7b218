package sequencer

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-synth/internal/testutil"
)

func TestNewTimelineValidation(t *testing.T) {
	_, err := NewTimeline(0, 120)
	require.ErrorIs(t, err, ErrInvalidDuration)

	_, err = NewTimeline(1.0, 0)
	require.ErrorIs(t, err, ErrInvalidTempo)

	_, err = NewTimeline(1.0, -60)
	require.ErrorIs(t, err, ErrInvalidTempo)
}

func TestSampleOffset(t *testing.T) {
	tl, err := NewTimeline(2.0, 75)
	require.NoError(t, err)

	// One beat at 75 BPM is 0.8 s, so 35280 samples at 44.1 kHz.
	assert.Equal(t, 0, tl.SampleOffset(0))
	assert.Equal(t, 35280, tl.SampleOffset(1))
	assert.Equal(t, 17640, tl.SampleOffset(0.5))
	assert.Equal(t, 70560, tl.SampleOffset(2))
}

func TestSecondsPerBeat(t *testing.T) {
	tl, err := NewTimeline(1.0, 120)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, tl.SecondsPerBeat(), 1e-12)
}

func TestOverlayIsAdditive(t *testing.T) {
	tl, err := NewTimeline(0.01, 120)
	require.NoError(t, err)

	src := []float64{1, 1, 1}
	tl.Overlay(src, 2, 1.0)
	tl.Overlay(src, 2, 1.0)

	buf := tl.Buffer()
	assert.Equal(t, 0.0, buf[1])
	for i := 2; i < 5; i++ {
		assert.Equal(t, 2.0, buf[i], "sample %d", i)
	}
	assert.Equal(t, 0.0, buf[5])
}

func TestOverlayTruncatesAtEnd(t *testing.T) {
	tl, err := NewTimeline(0.001, 120) // 44 samples
	require.NoError(t, err)

	long := make([]float64, 100)
	for i := range long {
		long[i] = 1
	}
	tl.Overlay(long, 40, 0.5)

	buf := tl.Buffer()
	require.Len(t, buf, 44)
	assert.Equal(t, 0.0, buf[39])
	for i := 40; i < 44; i++ {
		assert.Equal(t, 0.5, buf[i], "sample %d", i)
	}
}

func TestPatternFires(t *testing.T) {
	p := Pattern{Period: 4, Remainders: []int{0, 3}}
	want := map[int]bool{0: true, 3: true, 4: true, 7: true, 8: true}
	for i := range 9 {
		assert.Equal(t, want[i], p.fires(i), "step %d", i)
	}
}

func TestScheduleDrumsPlacesHits(t *testing.T) {
	tl, err := NewTimeline(2.0, 120) // four beats
	require.NoError(t, err)

	hit := testutil.Impulse(8, 0)
	tl.ScheduleDrums(Pattern{Period: 2, Remainders: []int{1}, Gain: 0.5}, hit)

	buf := tl.Buffer()
	assert.Equal(t, 0.0, buf[tl.SampleOffset(0)])
	assert.Equal(t, 0.5, buf[tl.SampleOffset(1)])
	assert.Equal(t, 0.0, buf[tl.SampleOffset(2)])
	assert.Equal(t, 0.5, buf[tl.SampleOffset(3)])
}

func TestScheduleDrumsHalfBeatGrid(t *testing.T) {
	tl, err := NewTimeline(1.0, 120) // two beats, four half-beat steps
	require.NoError(t, err)

	hit := testutil.Impulse(4, 0)
	tl.ScheduleDrums(Pattern{Period: 2, Remainders: []int{0}, Step: 0.5, Gain: 1.0}, hit)

	buf := tl.Buffer()
	assert.Equal(t, 1.0, buf[tl.SampleOffset(0)])
	assert.Equal(t, 0.0, buf[tl.SampleOffset(0.5)])
	assert.Equal(t, 1.0, buf[tl.SampleOffset(1)])
	assert.Equal(t, 0.0, buf[tl.SampleOffset(1.5)])
}

func testEvents() []NoteEvent {
	events := make([]NoteEvent, 0, 16)
	for i := range 16 {
		events = append(events, NoteEvent{
			Beat:  float64(i) * 0.25,
			Note:  60 + i%12,
			Beats: 0.5,
			Amp:   0.5,
		})
	}
	return events
}

func testRender(tl *Timeline) RenderFunc {
	return func(ev NoteEvent) ([]float64, error) {
		freq := 440.0 * float64(ev.Note) / 69.0
		n := tl.Config().Samples(ev.Beats * tl.SecondsPerBeat())
		return testutil.DeterministicSine(freq, tl.Config().SampleRate, ev.Amp, n), nil
	}
}

func TestScheduleNotesParallelMatchesSerial(t *testing.T) {
	events := testEvents()

	serial, err := NewTimeline(3.0, 100)
	require.NoError(t, err)
	require.NoError(t, serial.ScheduleNotes(events, testRender(serial)))

	parallel, err := NewTimeline(3.0, 100)
	require.NoError(t, err)
	require.NoError(t, parallel.ScheduleNotesParallel(events, 4, testRender(parallel)))

	testutil.RequireSliceNearlyEqual(t, parallel.Buffer(), serial.Buffer(), 0)
}

func TestScheduleNotesParallelReportsEventIndex(t *testing.T) {
	boom := errors.New("render failed")
	render := func(ev NoteEvent) ([]float64, error) {
		if ev.Note == 65 {
			return nil, boom
		}
		return []float64{0}, nil
	}

	tl, err := NewTimeline(3.0, 100)
	require.NoError(t, err)

	err = tl.ScheduleNotesParallel(testEvents(), 4, render)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), fmt.Sprintf("event %d", 5))
}
