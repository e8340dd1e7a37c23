package skelegen

import (
	"math"
	"strconv"
	"strings"
)

// Limits the GUI clamps scale settings to
const (
	MinScaleRatio = 1.0
	MaxScaleRatio = 2.0
	MinScaleSteps = 1
	MaxScaleSteps = 25
)

// OffsetToStepID maps an integer offset from the medium position to its
// symbolic id: 0->m, 1->l, 2->xl, 3->2xl, -1->s, -2->xs, -3->2xs.
func OffsetToStepID(offset int) string {
	switch {
	case offset == 0:
		return "m"
	case offset == 1:
		return "l"
	case offset == 2:
		return "xl"
	case offset == -1:
		return "s"
	case offset == -2:
		return "xs"
	case offset > 2:
		return strconv.Itoa(offset-1) + "xl"
	default:
		return strconv.Itoa(-offset-1) + "xs"
	}
}

// StepIDToOffset is the inverse of OffsetToStepID
func StepIDToOffset(id string) (int, bool) {
	switch id {
	case "m":
		return 0, true
	case "l":
		return 1, true
	case "xl":
		return 2, true
	case "s":
		return -1, true
	case "xs":
		return -2, true
	}

	var sign int
	var prefix string
	switch {
	case strings.HasSuffix(id, "xl"):
		sign, prefix = 1, strings.TrimSuffix(id, "xl")
	case strings.HasSuffix(id, "xs"):
		sign, prefix = -1, strings.TrimSuffix(id, "xs")
	default:
		return 0, false
	}

	n, err := strconv.Atoi(prefix)
	// "1xl" and "0xs" are not canonical ids
	if err != nil || n < 2 || prefix != strconv.Itoa(n) {
		return 0, false
	}
	return sign * (n + 1), true
}

// GenerateScale derives the ordered steps of a scale, most negative first.
// Settings are trusted as-is; see ScaleSettings.Clamp.
func GenerateScale(settings ScaleSettings) []ScaleStep {
	baseOffset, ok := StepIDToOffset(settings.BaseScaleIndex)
	if !ok {
		baseOffset = 0
	}

	steps := make([]ScaleStep, 0, settings.NegativeSteps+settings.PositiveSteps+1)
	for offset := -settings.NegativeSteps; offset <= settings.PositiveSteps; offset++ {
		id := OffsetToStepID(offset)
		distance := offset - baseOffset

		step := ScaleStep{
			ID:           id,
			VariableName: "--" + settings.NamingConvention + "-" + id,
			IsBase:       id == settings.BaseScaleIndex,
		}

		switch {
		case distance == 0:
			step.Min = settings.MinSize
			step.Max = settings.MaxSize
		case distance > 0:
			step.Min = roundTo(settings.MinSize*math.Pow(settings.MinScaleRatio, float64(distance)), 2)
			step.Max = roundTo(settings.MaxSize*math.Pow(settings.MaxScaleRatio, float64(distance)), 2)
		default:
			d := float64(-distance)
			step.Min = roundTo(settings.MinSize/math.Pow(settings.MinScaleRatio, d), 2)
			step.Max = roundTo(settings.MaxSize/math.Pow(settings.MaxScaleRatio, d), 2)
		}

		steps = append(steps, step)
	}

	return steps
}

// Clamp returns a copy of the settings with ratios and step counts forced
// into their supported ranges.
func (s ScaleSettings) Clamp() ScaleSettings {
	s.MinScaleRatio = math.Min(math.Max(s.MinScaleRatio, MinScaleRatio), MaxScaleRatio)
	s.MaxScaleRatio = math.Min(math.Max(s.MaxScaleRatio, MinScaleRatio), MaxScaleRatio)
	s.NegativeSteps = min(max(s.NegativeSteps, MinScaleSteps), MaxScaleSteps)
	s.PositiveSteps = min(max(s.PositiveSteps, MinScaleSteps), MaxScaleSteps)
	return s
}

// roundTo rounds v to at most places decimals
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// formatNumber prints v with at most 2 decimals and no trailing zeros
func formatNumber(v float64) string {
	r := roundTo(v, 2)
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
