package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Heightfield constants for the baseline surface shape. The surface is a cheap
// fixed sum of sinusoids rather than gradient noise, so elevation is exactly
// reproducible from the world coordinates alone.
const (
	hillAmplitude   = 8.0
	detailAmplitude = 2.0
	hillFrequencyX  = 0.04
	hillFrequencyZ  = 0.04
	detailFrequency = 0.1
)

// HeightField maps world-plane coordinates to elevation. Pure and stateless;
// safe to call from any goroutine.
type HeightField struct {
	classifier *Classifier
}

// NewHeightField creates a heightfield whose hill term is scaled by the biome
// height factor from the given classifier.
func NewHeightField(classifier *Classifier) *HeightField {
	return &HeightField{classifier: classifier}
}

// Elevation computes the surface height at world X,Z.
func (h *HeightField) Elevation(worldX, worldZ float64) float64 {
	scale := 1.0
	if h.classifier != nil {
		scale = h.classifier.Classify(worldX, worldZ).HeightScale
	}
	hills := hillAmplitude * scale * math.Sin(worldX*hillFrequencyX) * math.Cos(worldZ*hillFrequencyZ)
	detail := detailAmplitude * math.Sin(worldX*detailFrequency)
	return hills + detail
}

// Normal computes the unit surface normal at world X,Z from central
// differences of the elevation, so it always agrees with Elevation.
func (h *HeightField) Normal(worldX, worldZ float64) mgl64.Vec3 {
	const eps = 0.5
	dhdx := (h.Elevation(worldX+eps, worldZ) - h.Elevation(worldX-eps, worldZ)) / (2 * eps)
	dhdz := (h.Elevation(worldX, worldZ+eps) - h.Elevation(worldX, worldZ-eps)) / (2 * eps)
	return mgl64.Vec3{-dhdx, 1, -dhdz}.Normalize()
}
