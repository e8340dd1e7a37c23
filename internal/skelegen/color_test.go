package skelegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		format ColorFormat
		want   string
	}{
		{"hex to rgb", "#ff0000", FormatRGB, "rgb(255, 0, 0)"},
		{"short hex to hex", "#F00", FormatHex, "#ff0000"},
		{"rgb to hex", "rgb(51, 102, 204)", FormatHex, "#3366cc"},
		{"hex to hsl", "#3366cc", FormatHSL, "hsl(220, 60%, 50%)"},
		{"hsl to rgb", "hsl(0, 100%, 50%)", FormatRGB, "rgb(255, 0, 0)"},
		{"hex8 to rgba", "#ff000080", FormatRGBA, "rgba(255, 0, 0, 0.5)"},
		{"rgba to hsla", "rgba(255, 0, 0, 0.25)", FormatHSLA, "hsla(0, 100%, 50%, 0.25)"},
		{"rgb to hexa", "rgb(0, 0, 255)", FormatHexA, "#0000ffff"},
		{"transparent", "transparent", FormatRGBA, "rgba(0, 0, 0, 0)"},
		{"empty format is hex", "rgb(0, 128, 0)", "", "#008000"},
		{"unparseable passes through", "not-a-color", FormatRGB, "not-a-color"},
		{"variable passes through", "var(--brand)", FormatHex, "var(--brand)"},
		{"bad hex passes through", "#ggg", FormatRGB, "#ggg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatColor(tt.value, tt.format))
		})
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name   string
		format ColorFormat
		want   string
	}{
		{"hex family", FormatHex, "#ff000080"},
		{"hexa", FormatHexA, "#ff000080"},
		{"rgb family", FormatRGB, "rgba(255, 0, 0, 0.5)"},
		{"rgba", FormatRGBA, "rgba(255, 0, 0, 0.5)"},
		{"hsl family", FormatHSL, "hsla(0, 100%, 50%, 0.5)"},
		{"hsla", FormatHSLA, "hsla(0, 100%, 50%, 0.5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithAlpha("#ff0000", tt.format, 0.5))
		})
	}

	assert.Equal(t, "oops", WithAlpha("oops", FormatRGB, 0.5))
}

func TestColorVariables_Suffixing(t *testing.T) {
	token := ColorToken{
		Name:   "--brand",
		Value:  "#3366cc",
		Format: FormatHex,
		ShadesConfig: &PaletteConfig{
			Enabled: true,
			Count:   3,
			Palette: []string{"#2952a3", "#1f3d7a", "#142952"},
		},
		TransparentConfig: &TransparentConfig{Enabled: true},
	}

	decls := ColorVariables(token)
	require.Len(t, decls, 14)

	var names []string
	for _, d := range decls {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{
		"--brand",
		"--brand-d-1", "--brand-d-2", "--brand-d-3",
		"--brand-t-5", "--brand-t-10", "--brand-t-20", "--brand-t-30", "--brand-t-40",
		"--brand-t-50", "--brand-t-60", "--brand-t-70", "--brand-t-80", "--brand-t-90",
	}, names)

	assert.Equal(t, "#3366cc", decls[0].Value)
	assert.Equal(t, "#1f3d7a", decls[2].Value)
	assert.Equal(t, "#3366cc80", decls[9].Value)
}

func TestColorVariables_NormalizesName(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  []string
	}{
		{"bare name", "brand", []string{"--brand", "--brand-d-1"}},
		{"prefixed", "--brand", []string{"--brand", "--brand-d-1"}},
		{"label with spaces", " brand blue ", []string{"--brand-blue", "--brand-blue-d-1"}},
		{"blank", "  ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls := ColorVariables(ColorToken{
				Name:         tt.token,
				Value:        "#ffffff",
				ShadesConfig: &PaletteConfig{Enabled: true, Palette: []string{"#cccccc"}},
			})

			var names []string
			for _, d := range decls {
				names = append(names, d.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestColorVariables_Tints(t *testing.T) {
	token := ColorToken{
		Name:        "--accent",
		Value:       "rgb(255, 0, 0)",
		Format:      FormatRGB,
		TintsConfig: &PaletteConfig{Enabled: true, Palette: []string{"#ff6666", "#ffcccc"}},
		TransparentConfig: &TransparentConfig{
			Enabled: true,
		},
	}

	decls := ColorVariables(token)
	require.Len(t, decls, 13)
	assert.Equal(t, Declaration{Name: "--accent-l-1", Value: "rgb(255, 102, 102)"}, decls[1])
	assert.Equal(t, Declaration{Name: "--accent-l-2", Value: "rgb(255, 204, 204)"}, decls[2])
	assert.Equal(t, Declaration{Name: "--accent-t-5", Value: "rgba(255, 0, 0, 0.05)"}, decls[3])
}

func TestColorVariables_DisabledVariants(t *testing.T) {
	token := ColorToken{
		Name:              "--muted",
		Value:             "#777777",
		ShadesConfig:      &PaletteConfig{Enabled: false, Palette: []string{"#555555"}},
		TintsConfig:       &PaletteConfig{Enabled: true, Count: 1, Palette: []string{"#999999", "#bbbbbb"}},
		TransparentConfig: &TransparentConfig{Enabled: false},
	}

	decls := ColorVariables(token)
	require.Len(t, decls, 2)
	assert.Equal(t, "--muted-l-1", decls[1].Name)
}
