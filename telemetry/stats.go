package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated link statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick uint64 `csv:"-"`
	WindowEndTick   uint64 `csv:"window_end"`

	Particles     int     `csv:"particles"`
	SurfaceW      float64 `csv:"surface_w"`
	SurfaceH      float64 `csv:"surface_h"`
	DeferredTicks int     `csv:"deferred_ticks"`

	// Links per tick
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksMax  float64 `csv:"links_max"`

	// Link length distribution over all links in the window
	LengthMean float64 `csv:"length_mean"`
	LengthP10  float64 `csv:"length_p10"`
	LengthP50  float64 `csv:"length_p50"`
	LengthP90  float64 `csv:"length_p90"`

	AlphaMean float64 `csv:"alpha_mean"`
}

// computeWindowStats sorts dists in place.
func computeWindowStats(counts, dists, alphas []float64) WindowStats {
	var s WindowStats
	if len(counts) > 0 {
		s.LinksMean, s.LinksStd = stat.MeanStdDev(counts, nil)
		if len(counts) == 1 {
			s.LinksStd = 0
		}
		for _, c := range counts {
			s.LinksMax = max(s.LinksMax, c)
		}
	}
	if len(dists) > 0 {
		s.LengthMean = stat.Mean(dists, nil)
		sort.Float64s(dists)
		s.LengthP10 = stat.Quantile(0.10, stat.Empirical, dists, nil)
		s.LengthP50 = stat.Quantile(0.50, stat.Empirical, dists, nil)
		s.LengthP90 = stat.Quantile(0.90, stat.Empirical, dists, nil)
	}
	if len(alphas) > 0 {
		s.AlphaMean = stat.Mean(alphas, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Int("particles", s.Particles),
		slog.Float64("surface_w", s.SurfaceW),
		slog.Float64("surface_h", s.SurfaceH),
		slog.Int("deferred", s.DeferredTicks),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_max", s.LinksMax),
		slog.Float64("length_p50", s.LengthP50),
		slog.Float64("alpha_mean", s.AlphaMean),
	)
}
