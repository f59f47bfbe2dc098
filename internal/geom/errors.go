package geom

import "errors"

var (
	// ErrEmptyPolygon is returned when a generator receives no control points.
	ErrEmptyPolygon = errors.New("geom: empty control polygon")
	// ErrTooFewPoints is returned when a profile or grid is too short to span a segment.
	ErrTooFewPoints = errors.New("geom: too few points")
	// ErrNegativeCount is returned for negative depths and iteration counts.
	ErrNegativeCount = errors.New("geom: negative count")
	// ErrNonPositiveCount is returned when a slice or sample count must be positive.
	ErrNonPositiveCount = errors.New("geom: count must be positive")
	// ErrDepthTooLarge is returned when a fractal depth exceeds the generator's limit.
	ErrDepthTooLarge = errors.New("geom: depth too large")
	// ErrTooManyIterations is returned when Chaikin iterations exceed MaxChaikinIterations.
	ErrTooManyIterations = errors.New("geom: too many iterations")
	// ErrParameterRange is returned when a curve parameter lies outside [0,1].
	ErrParameterRange = errors.New("geom: parameter out of range")
	// ErrNonRectangular is returned when tensor grid rows differ in length.
	ErrNonRectangular = errors.New("geom: grid is not rectangular")
)
