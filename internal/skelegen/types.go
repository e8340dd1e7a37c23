package skelegen

// ScaleSettings configures one fluid scale
type ScaleSettings struct {
	NamingConvention string  `json:"namingConvention"` // "space" -> --space-m
	MinSize          float64 `json:"minSize"`          // px at the base step, min viewport
	MaxSize          float64 `json:"maxSize"`          // px at the base step, max viewport
	MinScaleRatio    float64 `json:"minScaleRatio"`    // 1.0-2.0
	MaxScaleRatio    float64 `json:"maxScaleRatio"`    // 1.0-2.0
	BaseScaleIndex   string  `json:"baseScaleIndex"`   // "m", "xl", "2xs", ...
	NegativeSteps    int     `json:"negativeSteps"`    // 1-25
	PositiveSteps    int     `json:"positiveSteps"`    // 1-25
}

// ScaleStep is one derived rung of a scale
type ScaleStep struct {
	ID           string  `json:"id"`           // "m", "s", "2xs", "3xl"
	VariableName string  `json:"variableName"` // "--space-m"
	Min          float64 `json:"min"`          // px, 2-decimal rounded
	Max          float64 `json:"max"`          // px, 2-decimal rounded
	IsBase       bool    `json:"isBase"`
}

// ScaleGroup is a named instance of a scale. Steps are derived, never stored.
type ScaleGroup struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Settings ScaleSettings `json:"settings"`
}

// ColorFormat selects how a color value is serialized
type ColorFormat string

// Supported color serializations
const (
	FormatHex  ColorFormat = "HEX"
	FormatHexA ColorFormat = "HEXA"
	FormatRGB  ColorFormat = "RGB"
	FormatRGBA ColorFormat = "RGBA"
	FormatHSL  ColorFormat = "HSL"
	FormatHSLA ColorFormat = "HSLA"
)

// PaletteConfig holds a precomputed shade or tint palette
type PaletteConfig struct {
	Enabled bool     `json:"enabled"`
	Count   int      `json:"count"`
	Palette []string `json:"palette"`
}

// TransparentConfig toggles the alpha variants of a color
type TransparentConfig struct {
	Enabled bool `json:"enabled"`
}

// UtilityConfig toggles the color utility classes of a color
type UtilityConfig struct {
	Text       bool `json:"text"`
	Background bool `json:"background"`
	Border     bool `json:"border"`
	Fill       bool `json:"fill"`
}

// ColorToken is a named color variable and its derived variants
type ColorToken struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`   // "--brand"
	Value             string             `json:"value"`  // any sRGB-interpretable string
	Format            ColorFormat        `json:"format"` // serialization only
	ShadesConfig      *PaletteConfig     `json:"shadesConfig,omitempty"`
	TintsConfig       *PaletteConfig     `json:"tintsConfig,omitempty"`
	TransparentConfig *TransparentConfig `json:"transparentConfig,omitempty"`
	UtilityConfig     UtilityConfig      `json:"utilityConfig"`
}

// ColorGroup is a named, ordered list of color tokens
type ColorGroup struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Colors []ColorToken `json:"colors"`
}

// VariableMode selects how a custom variable value is produced
type VariableMode string

// Custom variable modes
const (
	ModeSingle VariableMode = "single"
	ModeMinMax VariableMode = "minmax"
)

// CustomVariable is a user-defined CSS custom property
type CustomVariable struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"` // normalized to start with --
	Value    string       `json:"value"`
	Mode     VariableMode `json:"mode"`
	MinValue *float64     `json:"minValue,omitempty"` // px, minmax mode
	MaxValue *float64     `json:"maxValue,omitempty"` // px, minmax mode
}

// Property is one ordered declaration
type Property struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// SelectorRule is a user-defined rule emitted verbatim
type SelectorRule struct {
	ID         string     `json:"id"`
	Selector   string     `json:"selector"`
	Properties []Property `json:"properties"`
}

// SelectorGroup is a named, ordered list of selector rules
type SelectorGroup struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Rules []SelectorRule `json:"rules"`
}

// GeneratorConfig mass-produces utility classes from a scale
type GeneratorConfig struct {
	ID           string   `json:"id"`
	ClassName    string   `json:"className"` // "p-*", ".text-*"
	Properties   []string `json:"properties"`
	Enabled      bool     `json:"enabled"`
	ScaleGroupID string   `json:"scaleGroupId"`
}

// Settings are the workspace-level feature toggles
type Settings struct {
	SpacingEnabled    bool `json:"isSpacingEnabled"`
	TypographyEnabled bool `json:"isTypographyEnabled"`
}

// Workspace is the full token state graph, one serializable snapshot
type Workspace struct {
	Name                 string            `json:"name,omitempty"`
	Settings             Settings          `json:"settings"`
	ColorGroups          []ColorGroup      `json:"colorGroups,omitempty"`
	SpacingGroups        []ScaleGroup      `json:"spacingGroups,omitempty"`
	TypographyGroups     []ScaleGroup      `json:"typographyGroups,omitempty"`
	SpacingGenerators    []GeneratorConfig `json:"spacingGenerators,omitempty"`
	TypographyGenerators []GeneratorConfig `json:"typographyGenerators,omitempty"`
	TypographyVariables  []CustomVariable  `json:"typographyVariables,omitempty"`
	SpacingVariables     []CustomVariable  `json:"spacingVariables,omitempty"`
	LayoutVariables      []CustomVariable  `json:"layoutVariables,omitempty"`
	DesignVariables      []CustomVariable  `json:"designVariables,omitempty"`
	TypographySelectors  []SelectorGroup   `json:"typographySelectors,omitempty"`
	SpacingSelectors     []SelectorGroup   `json:"spacingSelectors,omitempty"`
	LayoutSelectors      []SelectorGroup   `json:"layoutSelectors,omitempty"`
	DesignSelectors      []SelectorGroup   `json:"designSelectors,omitempty"`
	Components           []Component       `json:"components,omitempty"`
	CustomCSS            string            `json:"customCSS,omitempty"`
}

// Declaration is one custom property in a variable block
type Declaration struct {
	Name  string
	Value string
}

// Config holds batch generation configuration
type Config struct {
	SourceDir   string   // "tokens"
	OutputDir   string   // "dist"
	Includes    []string // ["**/*.json"]
	Target      Target   // stylesheet or plugin dialect
	Fluid       string   // "explicit-vw", "calc", "" for the target default
	Package     bool     // also write a .skele package per workspace
	Source      string   // "source" field of .skele packages
	Pretty      bool     // pretty-print output
	Verbose     bool     // Enable debug logging
	RespectGit  bool     // skip files matched by .gitignore
	ForceColors bool
}

// Target selects the stylesheet flavor
type Target string

// Output targets
const (
	TargetCSS     Target = "css"
	TargetDialect Target = "dialect"
)

// GenerateResult contains batch generation stats
type GenerateResult struct {
	FilesScanned   int
	FilesWritten   []string
	RulesGenerated int
	Warnings       []string
}
