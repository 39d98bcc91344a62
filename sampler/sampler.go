// Package sampler evaluates the curves of a job at evenly spaced parameters
// and encodes the result as a report.
package sampler

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/spaghettifunk/lina/config"
	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

type SeriesKind string

const (
	SeriesEasing SeriesKind = "easing"
	SeriesBezier SeriesKind = "bezier"
)

// Series is one sampled curve. For easings each point is (x, f(x)); for
// Bézier curves it is the point on the curve.
type Series struct {
	Name   string      `json:"name" toml:"name" yaml:"name"`
	Kind   SeriesKind  `json:"kind" toml:"kind" yaml:"kind"`
	Points []math.Vec2 `json:"points" toml:"points" yaml:"points"`
}

// Report is the outcome of one sampling run.
type Report struct {
	RunID   string    `json:"run_id" toml:"run_id" yaml:"run_id"`
	Created time.Time `json:"created" toml:"created" yaml:"created"`
	Samples int       `json:"samples" toml:"samples" yaml:"samples"`
	Series  []Series  `json:"series" toml:"series" yaml:"series"`
}

// Params returns n evenly spaced parameters covering [0, 1], both ends included.
func Params(n int) []float32 {
	if n < 2 {
		return []float32{0}
	}
	ts := make([]float32, n)
	for i := range ts {
		ts[i] = float32(i) / float32(n-1)
	}
	// keep the last parameter exact regardless of rounding
	ts[n-1] = 1
	return ts
}

// SampleEasing evaluates f at every parameter in ts.
func SampleEasing(name string, f math.EasingFunc, ts []float32) Series {
	s := Series{Name: name, Kind: SeriesEasing, Points: make([]math.Vec2, len(ts))}
	for i, t := range ts {
		s.Points[i] = math.NewVec2(t, f(t))
	}
	return s
}

// SampleBezier evaluates the curve through points at every parameter in ts.
// Four control points use the cubic closed form, any other count De Casteljau.
func SampleBezier(name string, points []math.Point2, ts []float32) (Series, error) {
	if len(points) < 2 {
		return Series{}, fmt.Errorf("bezier %q with %d points: %w", name, len(points), core.ErrInvalidCurve)
	}

	eval := math.NewBezierCurve2(points).Evaluate
	if len(points) == 4 {
		eval = func(t float32) math.Point2 {
			return math.Bezier2(points[0], points[1], points[2], points[3], t)
		}
	}

	s := Series{Name: name, Kind: SeriesBezier, Points: make([]math.Vec2, len(ts))}
	for i, t := range ts {
		s.Points[i] = eval(t).ToVec()
	}
	return s, nil
}

// Sample runs every easing and Bézier curve named in cfg. Curves are sampled
// concurrently; the report lists easings first, then Bézier curves, each in
// configuration order.
func Sample(cfg *config.Config) (*Report, error) {
	ts := Params(cfg.Sampling.Samples)
	report := &Report{
		RunID:   uuid.New().String(),
		Created: time.Now().UTC().Truncate(time.Second),
		Samples: len(ts),
	}

	series := make([]Series, len(cfg.Easings)+len(cfg.Beziers))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, name := range cfg.Easings {
		g.Go(func() error {
			f, err := math.EasingByName(name)
			if err != nil {
				return err
			}
			series[i] = SampleEasing(name, f, ts)
			return nil
		})
	}

	offset := len(cfg.Easings)
	for i, b := range cfg.Beziers {
		g.Go(func() error {
			s, err := SampleBezier(b.Name, b.Points, ts)
			if err != nil {
				return err
			}
			series[offset+i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Series = series

	core.LogDebug("run %s: sampled %d series at %d parameters", report.RunID, len(report.Series), len(ts))
	return report, nil
}
