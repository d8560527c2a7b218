// Command genassets renders the full procedural audio catalog to WAV files.
//
// Usage:
//
//	genassets -out assets/audio
//	genassets -out assets/audio -workers 4
//
// Assets are rendered concurrently; a failed asset is logged and skipped so
// one bad recipe never blocks the rest of the batch.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/cwbudde/algo-synth/encode"
	"github.com/cwbudde/algo-synth/sequencer"
	"github.com/cwbudde/algo-synth/synth"
)

// asset binds an output path (relative to the output root) to its recipe.
type asset struct {
	path   string
	render func() ([]float64, error)
}

func catalog(kit *synth.Kit) []asset {
	return []asset{
		// Engines
		{"engines/biplane_engine.wav", func() ([]float64, error) { return kit.BiplaneEngine(4.0) }},
		{"engines/prop_engine.wav", func() ([]float64, error) { return kit.PropEngine(4.0) }},
		{"engines/bomber_engine.wav", func() ([]float64, error) { return kit.BomberEngine(5.0) }},
		{"engines/jet_engine.wav", func() ([]float64, error) { return kit.JetEngine(4.0) }},
		{"engines/rocket_engine.wav", func() ([]float64, error) { return kit.RocketEngine(4.0) }},
		{"engines/wind.wav", func() ([]float64, error) { return kit.Wind(5.0) }},

		// Music
		{"music/lofi_track_01.wav", func() ([]float64, error) { return sequencer.LofiTrack01(kit) }},
		{"music/lofi_track_02.wav", func() ([]float64, error) { return sequencer.LofiTrack02(kit) }},
		{"music/lofi_track_03.wav", func() ([]float64, error) { return sequencer.LofiTrack03(kit) }},

		// SFX
		{"sfx/clue_pop.wav", func() ([]float64, error) { return kit.CluePop(0.4) }},
		{"sfx/landing_success.wav", func() ([]float64, error) { return kit.LandingChime(0.9) }},
		{"sfx/coin_collect.wav", func() ([]float64, error) { return kit.CoinCollect(0.35) }},
		{"sfx/ui_click.wav", func() ([]float64, error) { return kit.UIClick(0.06) }},
		{"sfx/altitude_change.wav", func() ([]float64, error) { return kit.AltitudeWhoosh(0.6) }},
		{"sfx/boost_start.wav", func() ([]float64, error) { return kit.BoostStart(0.8) }},
	}
}

func renderOne(outDir string, a asset, sampleRate int) error {
	samples, err := a.render()
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, a.path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return encode.WriteWAV(path, samples, sampleRate)
}

func main() {
	outDir := flag.String("out", "assets/audio", "output directory for rendered WAV files")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent render workers")
	flag.Parse()

	if *workers < 1 {
		*workers = 1
	}

	kit := synth.NewKit()
	assets := catalog(kit)
	sampleRate := int(kit.Config().SampleRate)

	log.Printf("Generating %d audio files to %s...", len(assets), *outDir)

	var wg sync.WaitGroup
	sem := make(chan struct{}, *workers)
	failures := make([]error, len(assets))

	for i, a := range assets {
		wg.Add(1)
		go func(i int, a asset) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if err := renderOne(*outDir, a, sampleRate); err != nil {
				failures[i] = err
				log.Printf("FAILED %s: %v", a.path, err)
				return
			}
			log.Printf("wrote %s", a.path)
		}(i, a)
	}
	wg.Wait()

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		log.Printf("done with %d of %d assets failed", failed, len(assets))
		os.Exit(1)
	}
	log.Printf("done, %d assets written", len(assets))
}
