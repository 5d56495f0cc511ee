package systems

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// FoodNoise modulates the initial food probability with simplex noise so
// food starts out in patches. A nil *FoodNoise leaves probabilities as is.
type FoodNoise struct {
	noise opensimplex.Noise
	scale float64
}

// NewFoodNoise returns nil when scale is not positive.
func NewFoodNoise(seed int64, scale float64) *FoodNoise {
	if scale <= 0 {
		return nil
	}
	return &FoodNoise{
		noise: opensimplex.NewNormalized(seed),
		scale: scale,
	}
}

// Threshold scales a base threshold by twice the noise value at (x, y),
// so the mean over the world stays close to base. The result is clamped
// to [0, limit].
func (n *FoodNoise) Threshold(base, limit, x, y int) int {
	if n == nil {
		return base
	}
	v := n.noise.Eval2(float64(x)*n.scale, float64(y)*n.scale)
	t := int(math.Round(float64(base) * 2 * v))
	if t < 0 {
		return 0
	}
	if t > limit {
		return limit
	}
	return t
}
