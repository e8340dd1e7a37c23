package skelegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetToStepID(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "m"},
		{1, "l"},
		{2, "xl"},
		{3, "2xl"},
		{10, "9xl"},
		{-1, "s"},
		{-2, "xs"},
		{-3, "2xs"},
		{-25, "24xs"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, OffsetToStepID(tt.offset))
		})
	}
}

func TestStepIDRoundTrip(t *testing.T) {
	seen := make(map[string]int)
	for offset := -MaxScaleSteps; offset <= MaxScaleSteps; offset++ {
		id := OffsetToStepID(offset)
		if prev, dup := seen[id]; dup {
			t.Fatalf("offsets %d and %d both map to %q", prev, offset, id)
		}
		seen[id] = offset

		back, ok := StepIDToOffset(id)
		require.True(t, ok, "id %q", id)
		assert.Equal(t, offset, back, "id %q", id)
	}
}

func TestStepIDToOffset_RejectsNonCanonical(t *testing.T) {
	for _, id := range []string{"", "1xl", "0xs", "02xl", "xxl", "md", "-2xl"} {
		t.Run(id, func(t *testing.T) {
			_, ok := StepIDToOffset(id)
			assert.False(t, ok)
		})
	}
}

func TestGenerateScale_Scenario(t *testing.T) {
	steps := GenerateScale(ScaleSettings{
		NamingConvention: "space",
		MinSize:          16,
		MaxSize:          24,
		MinScaleRatio:    1.25,
		MaxScaleRatio:    1.333,
		BaseScaleIndex:   "m",
		NegativeSteps:    1,
		PositiveSteps:    1,
	})

	require.Len(t, steps, 3)
	assert.Equal(t, "s", steps[0].ID)
	assert.Equal(t, "m", steps[1].ID)
	assert.Equal(t, "l", steps[2].ID)

	assert.Equal(t, "--space-m", steps[1].VariableName)
	assert.True(t, steps[1].IsBase)
	assert.Equal(t, 16.0, steps[1].Min)
	assert.Equal(t, 24.0, steps[1].Max)

	assert.InDelta(t, 20, steps[2].Min, 0.01)
	assert.InDelta(t, 32, steps[2].Max, 0.01)
	assert.InDelta(t, 12.8, steps[0].Min, 0.01)
	assert.InDelta(t, 18.0, steps[0].Max, 0.01)
}

func TestGenerateScale_BaseIdentity(t *testing.T) {
	tests := []struct {
		name     string
		settings ScaleSettings
	}{
		{
			name: "medium base",
			settings: ScaleSettings{NamingConvention: "text", MinSize: 15.333, MaxSize: 19.777,
				MinScaleRatio: 1.2, MaxScaleRatio: 1.25, BaseScaleIndex: "m", NegativeSteps: 3, PositiveSteps: 5},
		},
		{
			name: "shifted base",
			settings: ScaleSettings{NamingConvention: "space", MinSize: 17.005, MaxSize: 21.009,
				MinScaleRatio: 1.5, MaxScaleRatio: 1.618, BaseScaleIndex: "xl", NegativeSteps: 2, PositiveSteps: 4},
		},
		{
			name: "negative base",
			settings: ScaleSettings{NamingConvention: "space", MinSize: 8, MaxSize: 10,
				MinScaleRatio: 1.1, MaxScaleRatio: 1.2, BaseScaleIndex: "2xs", NegativeSteps: 4, PositiveSteps: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bases int
			for _, step := range GenerateScale(tt.settings) {
				if !step.IsBase {
					continue
				}
				bases++
				assert.Equal(t, tt.settings.BaseScaleIndex, step.ID)
				assert.Equal(t, tt.settings.MinSize, step.Min)
				assert.Equal(t, tt.settings.MaxSize, step.Max)
			}
			assert.Equal(t, 1, bases)
		})
	}
}

func TestGenerateScale_Monotonic(t *testing.T) {
	for _, base := range []string{"m", "l", "s", "3xl", "3xs"} {
		t.Run(base, func(t *testing.T) {
			steps := GenerateScale(ScaleSettings{
				NamingConvention: "space",
				MinSize:          16,
				MaxSize:          20,
				MinScaleRatio:    1.2,
				MaxScaleRatio:    1.333,
				BaseScaleIndex:   base,
				NegativeSteps:    6,
				PositiveSteps:    6,
			})
			require.Len(t, steps, 13)
			for i := 1; i < len(steps); i++ {
				assert.Less(t, steps[i-1].Min, steps[i].Min, "%s -> %s", steps[i-1].ID, steps[i].ID)
				assert.Less(t, steps[i-1].Max, steps[i].Max, "%s -> %s", steps[i-1].ID, steps[i].ID)
			}
		})
	}
}

func TestGenerateScale_OrderAndNames(t *testing.T) {
	steps := GenerateScale(ScaleSettings{
		NamingConvention: "space", MinSize: 16, MaxSize: 20,
		MinScaleRatio: 1.2, MaxScaleRatio: 1.25, BaseScaleIndex: "m",
		NegativeSteps: 3, PositiveSteps: 3,
	})

	var ids, names []string
	for _, s := range steps {
		ids = append(ids, s.ID)
		names = append(names, s.VariableName)
	}
	assert.Equal(t, []string{"2xs", "xs", "s", "m", "l", "xl", "2xl"}, ids)
	assert.Equal(t, "--space-2xs", names[0])
	assert.Equal(t, "--space-2xl", names[6])
}

func TestScaleSettingsClamp(t *testing.T) {
	got := ScaleSettings{MinScaleRatio: 0.5, MaxScaleRatio: 3, NegativeSteps: 0, PositiveSteps: 40}.Clamp()
	assert.Equal(t, MinScaleRatio, got.MinScaleRatio)
	assert.Equal(t, MaxScaleRatio, got.MaxScaleRatio)
	assert.Equal(t, MinScaleSteps, got.NegativeSteps)
	assert.Equal(t, MaxScaleSteps, got.PositiveSteps)

	in := ScaleSettings{MinScaleRatio: 1.2, MaxScaleRatio: 1.5, NegativeSteps: 3, PositiveSteps: 4}
	assert.Equal(t, in, in.Clamp())
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{16, "16"},
		{1400, "1400"},
		{12.5, "12.5"},
		{31.992, "31.99"},
		{-0.001, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}
