package sampler

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/lina/config"
	"github.com/spaghettifunk/lina/core"
	"github.com/spaghettifunk/lina/math"
)

func TestParams(t *testing.T) {
	require.Equal(t, []float32{0, 0.25, 0.5, 0.75, 1}, Params(5))
	require.Equal(t, []float32{0, 1}, Params(2))
	require.Equal(t, []float32{0}, Params(1))

	ts := Params(7)
	require.Equal(t, float32(1), ts[len(ts)-1])
}

func TestSampleEasing(t *testing.T) {
	s := SampleEasing("easeInQuad", math.EaseInQuad, Params(3))
	require.Equal(t, SeriesEasing, s.Kind)
	require.Equal(t, []math.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 0.25}, {X: 1, Y: 1}}, s.Points)
}

func TestSampleBezier(t *testing.T) {
	cubic := []math.Point2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: 2}, {X: 4, Y: 0}}

	s, err := SampleBezier("arch", cubic, Params(3))
	require.NoError(t, err)
	require.Equal(t, SeriesBezier, s.Kind)
	require.Equal(t, []math.Vec2{{X: 0, Y: 0}, {X: 2, Y: 1.5}, {X: 4, Y: 0}}, s.Points)

	quad, err := SampleBezier("quad", []math.Point2{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}, Params(3))
	require.NoError(t, err)
	require.Equal(t, math.NewVec2(1, 1), quad.Points[1])

	_, err = SampleBezier("dot", []math.Point2{{}}, Params(3))
	require.True(t, errors.Is(err, core.ErrInvalidCurve))
}

func TestSample(t *testing.T) {
	cfg := config.Default()
	cfg.Sampling.Samples = 4
	cfg.Easings = []string{"easeInSine", "easeOutExpo"}
	cfg.Beziers = []config.BezierConfig{
		{Name: "line", Points: []math.Point2{{X: 0, Y: 0}, {X: 1, Y: 1}}},
	}

	r, err := Sample(cfg)
	require.NoError(t, err)

	_, err = uuid.Parse(r.RunID)
	require.NoError(t, err)
	require.Equal(t, 4, r.Samples)
	require.Len(t, r.Series, 3)
	require.Equal(t, "easeInSine", r.Series[0].Name)
	require.Equal(t, "line", r.Series[2].Name)
	require.Len(t, r.Series[2].Points, 4)

	other, err := Sample(cfg)
	require.NoError(t, err)
	require.NotEqual(t, r.RunID, other.RunID, "every run gets its own id")

	cfg.Easings = []string{"easeWobbly"}
	_, err = Sample(cfg)
	require.True(t, errors.Is(err, core.ErrUnknownEasing))
}

func TestEncode(t *testing.T) {
	cfg := config.Default()
	cfg.Sampling.Samples = 2
	r, err := Sample(cfg)
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, r, "json"))
		require.Contains(t, buf.String(), `"run_id": "`+r.RunID+`"`)
		require.Contains(t, buf.String(), `"name": "easeInOutCubic"`)
	})

	for _, format := range []string{"toml", "yaml"} {
		t.Run(format+" is readable back", func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, r, format))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			require.Equal(t, r.RunID, got.RunID)
			require.Equal(t, r.Series, got.Series)
			require.True(t, r.Created.Equal(got.Created))
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		require.True(t, errors.Is(Encode(&bytes.Buffer{}, r, "xml"), core.ErrUnknownFormat))
		_, err := Decode(&bytes.Buffer{}, "xml")
		require.True(t, errors.Is(err, core.ErrUnknownFormat))
	})
}
