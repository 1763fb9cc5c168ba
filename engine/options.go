package engine

import "math"

// This file collects the options structs for each pipeline stage. The
// teacher favors explicit per-call options structs with documented zero
// values over any global configuration object; every default below is
// applied by that stage's entry point when the caller passes a zero value,
// with two exceptions: ChainDetectionOptions.Tolerance keeps zero as a
// legal value and only a negative one is replaced, and
// PartDetectionParameters.EnableTessellation is left as the caller set it.

// ChainDetectionOptions configures C4.
type ChainDetectionOptions struct {
	// Tolerance is the maximum endpoint separation, in drawing units,
	// for two shape endpoints to be considered coincident. Zero is a
	// legal value (exact-match only); a negative value is replaced with
	// the default.
	Tolerance float64
}

func (o ChainDetectionOptions) withDefaults() ChainDetectionOptions {
	if o.Tolerance < 0 {
		o.Tolerance = defaultChainDetectionTolerance
	}
	return o
}

// NormalizationOptions configures C5.
type NormalizationOptions struct {
	TraversalTolerance   float64
	MaxTraversalAttempts int
}

func (o NormalizationOptions) withDefaults() NormalizationOptions {
	if o.TraversalTolerance <= 0 {
		o.TraversalTolerance = defaultTraversalTolerance
	}
	if o.MaxTraversalAttempts <= 0 {
		o.MaxTraversalAttempts = defaultMaxTraversalAttempts
	}
	return o
}

// PartDetectionParameters configures C6's tessellation density, per §9.
type PartDetectionParameters struct {
	CircleTessellationPoints int
	MinArcTessellationPoints int
	ArcTessellationDensity   float64 // radians per segment
	DecimalPrecision         int
	EnableTessellation       bool
}

func defaultPartDetectionParameters() PartDetectionParameters {
	return PartDetectionParameters{
		CircleTessellationPoints: 64,
		MinArcTessellationPoints: 16,
		ArcTessellationDensity:   math.Pi / 32,
		DecimalPrecision:         6,
		EnableTessellation:       true,
	}
}

func (o PartDetectionParameters) withDefaults() PartDetectionParameters {
	d := defaultPartDetectionParameters()
	if o.CircleTessellationPoints <= 0 {
		o.CircleTessellationPoints = d.CircleTessellationPoints
	}
	if o.MinArcTessellationPoints <= 0 {
		o.MinArcTessellationPoints = d.MinArcTessellationPoints
	}
	if o.ArcTessellationDensity <= 0 {
		o.ArcTessellationDensity = d.ArcTessellationDensity
	}
	if o.DecimalPrecision <= 0 {
		o.DecimalPrecision = d.DecimalPrecision
	}
	return o
}

// ExtendDirection selects which end of a shape an extension or fill
// operation grows, per §4.8/§4.9.
type ExtendDirection uint8

const (
	ExtendAuto ExtendDirection = iota
	ExtendStart
	ExtendEnd
)

// FillOptions configures C9.
type FillOptions struct {
	Tolerance    float64
	MaxExtension float64
	Direction    ExtendDirection
}

func (o FillOptions) withDefaults() FillOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTraversalTolerance
	}
	if o.MaxExtension <= 0 {
		o.MaxExtension = 1000
	}
	return o
}

// ChainOffsetOptions configures C11.
type ChainOffsetOptions struct {
	Tolerance      float64
	MaxExtension   float64
	SnapThreshold  float64
}

func (o ChainOffsetOptions) withDefaults() ChainOffsetOptions {
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTraversalTolerance
	}
	if o.MaxExtension <= 0 {
		o.MaxExtension = 1000
	}
	if o.SnapThreshold <= 0 {
		o.SnapThreshold = o.Tolerance * 10
	}
	return o
}
