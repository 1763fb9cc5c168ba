package engine_test

import (
	"testing"

	"github.com/go-cam/geomkernel/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipelineSquareWithHole exercises the stage sequence end to end on a
// small drawing: a 100x100 square shell (as four separate lines, out of
// traversal order and with two reversed) enclosing a 10x10 square hole
// polyline, all shifted into negative coordinates to exercise
// translate-to-positive too.
func TestPipelineSquareWithHole(t *testing.T) {
	shellLines := []engine.Line{
		mustLine(t, engine.Point{X: -50, Y: -50}, engine.Point{X: 50, Y: -50}),
		mustLine(t, engine.Point{X: 50, Y: 50}, engine.Point{X: 50, Y: -50}), // stored backward
		mustLine(t, engine.Point{X: 50, Y: 50}, engine.Point{X: -50, Y: 50}), // stored backward
		mustLine(t, engine.Point{X: -50, Y: 50}, engine.Point{X: -50, Y: -50}),
	}
	var shapes []engine.Shape
	for _, l := range shellLines {
		shapes = append(shapes, engine.NewShape("cut", l))
	}

	hole, err := engine.NewPolyline([]engine.Vertex{
		{Point: engine.Point{X: -5, Y: -5}},
		{Point: engine.Point{X: 5, Y: -5}},
		{Point: engine.Point{X: 5, Y: 5}},
		{Point: engine.Point{X: -5, Y: 5}},
	}, true)
	require.NoError(t, err)
	shapes = append(shapes, engine.NewShape("cut", hole))

	translated, err := engine.TranslateToPositive(shapes)
	require.NoError(t, err)
	for _, s := range translated {
		box := s.Primitive.BoundingBox()
		assert.GreaterOrEqual(t, box.Min.X, -1e-9)
		assert.GreaterOrEqual(t, box.Min.Y, -1e-9)
	}

	decomposed, diags := engine.DecomposePolylines(translated)
	assert.Empty(t, diags)
	// 4 shell lines pass through untouched, the closed 4-vertex hole
	// polyline explodes into 4 line segments.
	assert.Len(t, decomposed, 8)

	chains := engine.DetectChains(decomposed, engine.ChainDetectionOptions{Tolerance: 0.01})
	require.Len(t, chains, 2)

	var normalized []engine.Chain
	for _, c := range chains {
		n, diags := engine.NormalizeChain(c, engine.NormalizationOptions{})
		assert.Empty(t, diags)
		assert.True(t, n.Walkable(0.01))
		normalized = append(normalized, n)
	}

	parts, diags := engine.DetectParts(normalized, engine.PartDetectionParameters{})
	assert.Empty(t, diags)
	require.Len(t, parts, 1)
	assert.Len(t, parts[0].Holes, 1)

	offsetShell, diags := engine.OffsetChainByDistance(parts[0].Shell, -2, engine.ChainOffsetOptions{})
	assert.Empty(t, diags)
	assert.NotEmpty(t, offsetShell.Shapes)

	paths, moves := engine.OptimizeCutOrder(parts, nil)
	require.Len(t, paths, 2)
	assert.Equal(t, parts[0].Holes[0].ID, paths[0].ChainID)
	assert.Len(t, moves, 1)
}

func mustLine(t *testing.T, a, b engine.Point) engine.Line {
	t.Helper()
	l, err := engine.NewLine(a, b)
	require.NoError(t, err)
	return l
}
