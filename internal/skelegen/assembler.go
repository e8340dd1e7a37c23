package skelegen

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultCustomCSS is the placeholder the editor starts with; it is never emitted
const DefaultCustomCSS = "/* Add your custom CSS here */"

// AssembleOptions tunes a compilation. The zero value uses the
// explicit-vw fluid formula and the built-in pretty-printer.
type AssembleOptions struct {
	Fluid     FluidStrategy // "" picks the target default
	Formatter Formatter     // nil uses FormatCSS
	Raw       bool          // skip pretty-printing
	Logger    *log.Logger   // nil uses log.Default()
}

// Result is a compiled stylesheet with its stats
type Result struct {
	CSS       string
	Variables int
	Rules     int
	Formatted bool
}

// rule is one selector with its ordered declarations
type rule struct {
	selector string
	decls    []Property
}

// colorUtilityKinds are emitted in this order, with their class prefix and property
var colorUtilityKinds = []struct {
	prefix   string
	property string
	enabled  func(UtilityConfig) bool
}{
	{"text", "color", func(u UtilityConfig) bool { return u.Text }},
	{"bg", "background-color", func(u UtilityConfig) bool { return u.Background }},
	{"border", "border-color", func(u UtilityConfig) bool { return u.Border }},
	{"fill", "fill", func(u UtilityConfig) bool { return u.Fill }},
}

// Assemble compiles a workspace into a stylesheet
func Assemble(ws Workspace, opts AssembleOptions) string {
	return Compile(ws, opts).CSS
}

// Compile compiles a workspace into a stylesheet and reports what it emitted.
// It never fails: absent groups are empty and a pretty-print failure falls
// back to the raw stylesheet.
func Compile(ws Workspace, opts AssembleOptions) Result {
	fluid := opts.fluid(FluidExplicitVW)
	s := ws.Settings

	decls := variableDeclarations(ws, fluid)

	var rules []rule
	if s.TypographyEnabled {
		rules = append(rules, generatorRules(ws.TypographyGenerators, ws.TypographyGroups)...)
		rules = append(rules, selectorRules(ws.TypographySelectors)...)
	}
	if s.SpacingEnabled {
		rules = append(rules, generatorRules(ws.SpacingGenerators, ws.SpacingGroups)...)
		rules = append(rules, selectorRules(ws.SpacingSelectors)...)
	}
	rules = append(rules, selectorRules(ws.LayoutSelectors)...)
	rules = append(rules, selectorRules(ws.DesignSelectors)...)
	rules = append(rules, colorUtilityRules(ws.ColorGroups)...)

	var b strings.Builder
	writeVariableBlock(&b, ":root", decls)
	for _, r := range rules {
		writeRule(&b, r)
	}
	writeCustomCSS(&b, ws.CustomCSS)

	css, formatted := opts.finish(b.String())
	return Result{CSS: css, Variables: len(decls), Rules: len(rules), Formatted: formatted}
}

// variableDeclarations builds the ordered variable block: bounds,
// typography, spacing, layout, design, then colors.
func variableDeclarations(ws Workspace, fluid FluidStrategy) []Declaration {
	var decls []Declaration
	s := ws.Settings

	if s.SpacingEnabled || s.TypographyEnabled {
		decls = append(decls,
			Declaration{Name: "--min-screen-width", Value: formatNumber(MinViewportPx) + "px"},
			Declaration{Name: "--max-screen-width", Value: formatNumber(MaxViewportPx) + "px"},
		)
	}

	if s.TypographyEnabled {
		decls = append(decls, scaleDeclarations(ws.TypographyGroups, fluid)...)
		decls = append(decls, customDeclarations(ws.TypographyVariables, fluid)...)
	}
	if s.SpacingEnabled {
		decls = append(decls, scaleDeclarations(ws.SpacingGroups, fluid)...)
		decls = append(decls, customDeclarations(ws.SpacingVariables, fluid)...)
	}

	decls = append(decls, customDeclarations(ws.LayoutVariables, fluid)...)
	decls = append(decls, customDeclarations(ws.DesignVariables, fluid)...)

	for _, group := range ws.ColorGroups {
		for _, token := range group.Colors {
			decls = append(decls, ColorVariables(token)...)
		}
	}

	return decls
}

func scaleDeclarations(groups []ScaleGroup, fluid FluidStrategy) []Declaration {
	var decls []Declaration
	for _, group := range groups {
		for _, step := range GenerateScale(group.Settings) {
			decls = append(decls, Declaration{
				Name:  step.VariableName,
				Value: FluidValue(fluid, step.Min, step.Max),
			})
		}
	}
	return decls
}

// customDeclarations emits single-mode values verbatim and minmax values as
// fluid expressions. A minmax variable missing an endpoint falls back to its
// literal value.
func customDeclarations(vars []CustomVariable, fluid FluidStrategy) []Declaration {
	decls := make([]Declaration, 0, len(vars))
	for _, v := range vars {
		name := NormalizeVariableName(v.Name)
		if name == "" {
			continue
		}

		value := strings.TrimSpace(v.Value)
		if v.Mode == ModeMinMax && v.MinValue != nil && v.MaxValue != nil {
			value = FluidValue(fluid, *v.MinValue, *v.MaxValue)
		}
		if value == "" {
			continue
		}

		decls = append(decls, Declaration{Name: name, Value: value})
	}
	return decls
}

// resolveGroup finds the scale group a generator is bound to. An empty id
// binds to the first group.
func resolveGroup(id string, groups []ScaleGroup) (ScaleGroup, bool) {
	if len(groups) == 0 {
		return ScaleGroup{}, false
	}
	if id == "" {
		return groups[0], true
	}
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return ScaleGroup{}, false
}

// generatorRules emits one rule per scale step for every enabled generator,
// setting each listed property to the step's variable.
func generatorRules(generators []GeneratorConfig, groups []ScaleGroup) []rule {
	var rules []rule
	for _, gen := range generators {
		if !gen.Enabled || len(gen.Properties) == 0 {
			continue
		}
		group, ok := resolveGroup(gen.ScaleGroupID, groups)
		if !ok {
			continue
		}

		base := baseClassName(gen.ClassName)
		for _, step := range GenerateScale(group.Settings) {
			r := rule{selector: base + "-" + step.ID}
			for _, prop := range gen.Properties {
				r.decls = append(r.decls, Property{Property: prop, Value: "var(" + step.VariableName + ")"})
			}
			rules = append(rules, r)
		}
	}
	return rules
}

func selectorRules(groups []SelectorGroup) []rule {
	var rules []rule
	for _, group := range groups {
		for _, sr := range group.Rules {
			selector := strings.TrimSpace(sr.Selector)
			if selector == "" {
				continue
			}
			rules = append(rules, rule{selector: selector, decls: sr.Properties})
		}
	}
	return rules
}

// colorUtilityRules emits text, background, border and fill classes in that
// order, each kind sorted by class name.
func colorUtilityRules(groups []ColorGroup) []rule {
	var rules []rule
	for _, kind := range colorUtilityKinds {
		var kindRules []rule
		for _, group := range groups {
			for _, token := range group.Colors {
				if !kind.enabled(token.UtilityConfig) {
					continue
				}
				for _, name := range utilityVariableNames(token) {
					kindRules = append(kindRules, rule{
						selector: "." + kind.prefix + "-" + strings.TrimPrefix(name, "--"),
						decls:    []Property{{Property: kind.property, Value: "var(" + name + ")"}},
					})
				}
			}
		}
		sort.SliceStable(kindRules, func(i, j int) bool {
			return kindRules[i].selector < kindRules[j].selector
		})
		rules = append(rules, kindRules...)
	}
	return rules
}

// utilityVariableNames lists the variables of a token that get color
// utilities: the base color, its shades and its tints.
func utilityVariableNames(token ColorToken) []string {
	var names []string
	alpha := NormalizeVariableName(token.Name) + "-t-"
	for _, d := range ColorVariables(token) {
		if strings.HasPrefix(d.Name, alpha) {
			continue
		}
		names = append(names, d.Name)
	}
	return names
}

func writeVariableBlock(b *strings.Builder, selector string, decls []Declaration) {
	if len(decls) == 0 {
		return
	}
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, d := range decls {
		b.WriteString("  " + d.Name + ": " + d.Value + ";\n")
	}
	b.WriteString("}\n")
}

func writeRule(b *strings.Builder, r rule) {
	b.WriteString(r.selector)
	b.WriteString(" {\n")
	for _, d := range r.decls {
		if strings.TrimSpace(d.Property) == "" {
			continue
		}
		b.WriteString("  " + strings.TrimSpace(d.Property) + ": " + strings.TrimSpace(d.Value) + ";\n")
	}
	b.WriteString("}\n")
}

func writeCustomCSS(b *strings.Builder, custom string) {
	custom = strings.TrimSpace(custom)
	if custom == "" || custom == DefaultCustomCSS {
		return
	}
	b.WriteString(custom)
	b.WriteString("\n")
}

// fluid returns the configured strategy or the target default
func (o AssembleOptions) fluid(def FluidStrategy) FluidStrategy {
	if o.Fluid == "" {
		return def
	}
	return o.Fluid
}

func (o AssembleOptions) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// finish pretty-prints raw, falling back to raw when formatting fails
func (o AssembleOptions) finish(raw string) (string, bool) {
	if o.Raw || raw == "" {
		return raw, false
	}
	format := o.Formatter
	if format == nil {
		format = FormatCSS
	}
	out, err := format(raw)
	if err != nil {
		o.logger().Warn("pretty-print failed, using raw stylesheet", "err", err)
		return raw, false
	}
	return out, true
}
