package skelegen

import "fmt"

// Viewport bounds the fluid values interpolate between
const (
	MinViewportPx = 320.0
	MaxViewportPx = 1400.0
	RootFontPx    = 16.0
)

// FluidStrategy selects the clamp() formula
type FluidStrategy string

const (
	// FluidExplicitVW derives the vw slope and rem intercept from the
	// viewport bounds and prints every number with 4 decimals.
	FluidExplicitVW FluidStrategy = "explicit-vw"
	// FluidCalc uses fixed multipliers (1.48 for the slope, 0.85 for the
	// intercept) inside calc() and prints every number with 2 decimals.
	// It is an approximation of the same interpolation, kept as is for the
	// plugin dialect output.
	FluidCalc FluidStrategy = "calc"
)

// ParseFluidStrategy maps a config value to a strategy, using def for "".
func ParseFluidStrategy(s string, def FluidStrategy) (FluidStrategy, error) {
	switch FluidStrategy(s) {
	case "":
		return def, nil
	case FluidExplicitVW, FluidCalc:
		return FluidStrategy(s), nil
	}
	return "", fmt.Errorf("unknown fluid strategy %q (want %q or %q)", s, FluidExplicitVW, FluidCalc)
}

// FluidValue returns a clamp() expression growing from minPx at the min
// viewport to maxPx at the max viewport. When minPx > maxPx the value
// shrinks instead; the clamp bounds are always written lower first since
// CSS resolves clamp(MIN, VAL, MAX) to MIN whenever MIN > MAX.
func FluidValue(strategy FluidStrategy, minPx, maxPx float64) string {
	if strategy == FluidCalc {
		return calcClamp(minPx, maxPx)
	}
	return explicitClamp(minPx, maxPx)
}

func explicitClamp(minPx, maxPx float64) string {
	minRem := minPx / RootFontPx
	maxRem := maxPx / RootFontPx
	minViewportRem := MinViewportPx / RootFontPx
	maxViewportRem := MaxViewportPx / RootFontPx

	vw := 100 * (maxRem - minRem) / (maxViewportRem - minViewportRem)
	remConstant := minRem - minViewportRem*vw/100

	lo, hi := bounds(minRem, maxRem)
	return fmt.Sprintf("clamp(%.4frem, %.4frem + %.4fvw, %.4frem)", lo, remConstant, vw, hi)
}

func calcClamp(minPx, maxPx float64) string {
	minRem := roundTo(minPx/RootFontPx, 2)
	maxRem := roundTo(maxPx/RootFontPx, 2)

	vw := (maxRem - minRem) * 1.48
	remConstant := minRem * 0.85

	lo, hi := bounds(minRem, maxRem)
	return fmt.Sprintf("clamp(%.2frem, calc(%.2frem + %.2fvw), %.2frem)", lo, remConstant, vw, hi)
}

func bounds(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
