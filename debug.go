package starscape

import (
	"fmt"
	"os"
	"time"
)

// drawStats holds per-frame draw metrics. Only populated in debug mode.
type drawStats struct {
	drawn     int
	culled    int
	drawCalls int
	drawTime  time.Duration
}

// debugLogDraw prints per-frame draw stats to stderr.
func (s *Scene) debugLogDraw(stats drawStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[starscape] drawn: %d | culled: %d | draw calls: %d | time: %v\n",
		stats.drawn, stats.culled, stats.drawCalls, stats.drawTime)
}

// debugLogGenerate prints one-shot generation stats to stderr.
func debugLogGenerate(count int, p Params, elapsed time.Duration) {
	hemi := "sphere"
	if p.Hemisphere {
		hemi = "hemisphere"
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[starscape] generated %d stars (%s, seed %d, density %g) in %v\n",
		count, hemi, p.RandomSeed, p.StarDensity, elapsed)
}
