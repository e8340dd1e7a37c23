package skelegen

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SpacingTokens is the fixed numeric spacing vocabulary of the plugin
// dialect; token n stands for n*SpacingUnitPx.
var SpacingTokens = []int{1, 2, 3, 4, 6, 8, 12}

// SpacingUnitPx is the pixel size of spacing token 1
const SpacingUnitPx = 4.0

// propertyAbbreviations names dialect utility classes
var propertyAbbreviations = map[string]string{
	"padding":        "p",
	"padding-top":    "pt",
	"padding-right":  "pr",
	"padding-bottom": "pb",
	"padding-left":   "pl",
	"padding-inline": "px",
	"padding-block":  "py",
	"margin":         "m",
	"margin-top":     "mt",
	"margin-right":   "mr",
	"margin-bottom":  "mb",
	"margin-left":    "ml",
	"margin-inline":  "mx",
	"margin-block":   "my",
	"gap":            "gap",
	"row-gap":        "gap-y",
	"column-gap":     "gap-x",
	"width":          "w",
	"height":         "h",
	"inset":          "inset",
}

// pairedSides are collapsed into one x or y class when both sides are present
var pairedSides = []struct {
	prefix string
	abbr   string
}{
	{"padding", "p"},
	{"margin", "m"},
}

var shadeNumber = regexp.MustCompile(`(\d+)`)

// tokenStep is a scale step renamed to a dialect token
type tokenStep struct {
	token string
	step  ScaleStep
}

// AssembleDialect compiles a workspace into the plugin dialect
func AssembleDialect(ws Workspace, opts AssembleOptions) string {
	return CompileDialect(ws, opts).CSS
}

// CompileDialect compiles a workspace into the plugin dialect: numeric
// spacing tokens as flat px, renamed typography ids, abbreviated utility
// classes and simplified color utility names. The default fluid formula is
// the calc form.
func CompileDialect(ws Workspace, opts AssembleOptions) Result {
	fluid := opts.fluid(FluidCalc)
	s := ws.Settings

	var decls []Declaration
	if s.SpacingEnabled || s.TypographyEnabled {
		decls = append(decls,
			Declaration{Name: "--min-screen-width", Value: formatNumber(MinViewportPx) + "px"},
			Declaration{Name: "--max-screen-width", Value: formatNumber(MaxViewportPx) + "px"},
		)
	}
	if s.TypographyEnabled {
		for _, group := range ws.TypographyGroups {
			for _, ts := range typographySteps(group) {
				decls = append(decls, Declaration{
					Name:  dialectVariable(group, ts.token),
					Value: FluidValue(fluid, ts.step.Min, ts.step.Max),
				})
			}
		}
		decls = append(decls, customDeclarations(ws.TypographyVariables, fluid)...)
	}
	if s.SpacingEnabled {
		for _, group := range ws.SpacingGroups {
			for _, ts := range spacingSteps(group) {
				decls = append(decls, Declaration{
					Name:  dialectVariable(group, ts.token),
					Value: formatNumber(averagePx(ts.step)) + "px",
				})
			}
		}
		decls = append(decls, customDeclarations(ws.SpacingVariables, fluid)...)
	}
	decls = append(decls, customDeclarations(ws.LayoutVariables, fluid)...)
	decls = append(decls, customDeclarations(ws.DesignVariables, fluid)...)
	for _, group := range ws.ColorGroups {
		for _, token := range group.Colors {
			decls = append(decls, ColorVariables(token)...)
		}
	}

	var rules []rule
	if s.TypographyEnabled {
		rules = append(rules, dialectTypographyRules(ws.TypographyGenerators, ws.TypographyGroups, fluid)...)
		rules = append(rules, selectorRules(ws.TypographySelectors)...)
	}
	if s.SpacingEnabled {
		rules = append(rules, dialectSpacingRules(ws.SpacingGenerators, ws.SpacingGroups, fluid)...)
		rules = append(rules, selectorRules(ws.SpacingSelectors)...)
	}
	rules = append(rules, selectorRules(ws.LayoutSelectors)...)
	rules = append(rules, selectorRules(ws.DesignSelectors)...)
	rules = append(rules, dialectColorRules(ws.ColorGroups)...)

	var b strings.Builder
	writeVariableBlock(&b, ":root", decls)
	for _, r := range rules {
		writeRule(&b, r)
	}
	writeCustomCSS(&b, ws.CustomCSS)

	css, formatted := opts.finish(b.String())
	return Result{CSS: css, Variables: len(decls), Rules: len(rules), Formatted: formatted}
}

// DialectTypographyID renames "s" to "sm" and "m" to "base"; every other id is kept
func DialectTypographyID(id string) string {
	switch id {
	case "s":
		return "sm"
	case "m":
		return "base"
	}
	return id
}

func typographySteps(group ScaleGroup) []tokenStep {
	steps := GenerateScale(group.Settings)
	out := make([]tokenStep, len(steps))
	for i, step := range steps {
		out[i] = tokenStep{token: DialectTypographyID(step.ID), step: step}
	}
	return out
}

// spacingSteps assigns every spacing token the scale step whose average
// pixel value is nearest to the token's size. Ties go to the smaller step.
func spacingSteps(group ScaleGroup) []tokenStep {
	steps := GenerateScale(group.Settings)
	if len(steps) == 0 {
		return nil
	}

	out := make([]tokenStep, 0, len(SpacingTokens))
	for _, token := range SpacingTokens {
		target := float64(token) * SpacingUnitPx
		best := 0
		for i, step := range steps {
			if math.Abs(averagePx(step)-target) < math.Abs(averagePx(steps[best])-target) {
				best = i
			}
		}
		out = append(out, tokenStep{token: strconv.Itoa(token), step: steps[best]})
	}
	return out
}

func averagePx(step ScaleStep) float64 {
	return (step.Min + step.Max) / 2
}

func dialectVariable(group ScaleGroup, token string) string {
	return "--" + group.Settings.NamingConvention + "-" + token
}

func dialectTypographyRules(generators []GeneratorConfig, groups []ScaleGroup, fluid FluidStrategy) []rule {
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
		for _, ts := range typographySteps(group) {
			value := FluidValue(fluid, ts.step.Min, ts.step.Max)
			r := rule{selector: base + "-" + ts.token}
			for _, prop := range gen.Properties {
				r.decls = append(r.decls, Property{Property: prop, Value: value})
			}
			rules = append(rules, r)
		}
	}
	return rules
}

// utilityClass is one abbreviated class and the properties it sets
type utilityClass struct {
	abbr  string
	props []string
}

// utilityClasses groups properties into abbreviated dialect classes,
// collapsing left+right into x and top+bottom into y for padding and margin.
func utilityClasses(props []string) []utilityClass {
	present := make(map[string]bool, len(props))
	for _, p := range props {
		present[p] = true
	}

	// collapsed maps a side property to the class it was folded into
	collapsed := make(map[string]string)
	for _, side := range pairedSides {
		if present[side.prefix+"-left"] && present[side.prefix+"-right"] {
			collapsed[side.prefix+"-left"] = side.abbr + "x"
			collapsed[side.prefix+"-right"] = side.abbr + "x"
		}
		if present[side.prefix+"-top"] && present[side.prefix+"-bottom"] {
			collapsed[side.prefix+"-top"] = side.abbr + "y"
			collapsed[side.prefix+"-bottom"] = side.abbr + "y"
		}
	}

	var classes []utilityClass
	index := make(map[string]int)
	for _, p := range props {
		abbr, ok := collapsed[p]
		if !ok {
			abbr, ok = propertyAbbreviations[p]
			if !ok {
				abbr = p
			}
		}
		if i, seen := index[abbr]; seen {
			classes[i].props = append(classes[i].props, p)
			continue
		}
		index[abbr] = len(classes)
		classes = append(classes, utilityClass{abbr: abbr, props: []string{p}})
	}
	return classes
}

// dialectSpacingRules emits abbreviated spacing classes per token. Margin and
// padding get inline fluid values; other properties use the flat variable.
func dialectSpacingRules(generators []GeneratorConfig, groups []ScaleGroup, fluid FluidStrategy) []rule {
	var rules []rule
	for _, gen := range generators {
		if !gen.Enabled || len(gen.Properties) == 0 {
			continue
		}
		group, ok := resolveGroup(gen.ScaleGroupID, groups)
		if !ok {
			continue
		}

		steps := spacingSteps(group)
		for _, class := range utilityClasses(gen.Properties) {
			for _, ts := range steps {
				r := rule{selector: "." + class.abbr + "-" + ts.token}
				for _, prop := range class.props {
					value := "var(" + dialectVariable(group, ts.token) + ")"
					if strings.HasPrefix(prop, "padding") || strings.HasPrefix(prop, "margin") {
						value = FluidValue(fluid, ts.step.Min, ts.step.Max)
					}
					r.decls = append(r.decls, Property{Property: prop, Value: value})
				}
				rules = append(rules, r)
			}
		}
	}
	return rules
}

// SimplifyColorName maps a color variable onto the dialect's color
// vocabulary, falling back to the name without its -- prefix.
func SimplifyColorName(name string) string {
	n := strings.ToLower(strings.TrimPrefix(name, "--"))

	switch {
	case strings.Contains(n, "white"):
		return "white"
	case strings.Contains(n, "black"):
		return "black"
	case strings.Contains(n, "gray"), strings.Contains(n, "grey"), strings.Contains(n, "neutral"):
		return grayShade(n)
	case strings.Contains(n, "blue"):
		return "blue"
	case strings.Contains(n, "green"):
		return "green"
	case strings.Contains(n, "red"):
		return "red"
	case strings.Contains(n, "yellow"):
		return "yellow"
	}
	return n
}

// grayShade picks gray-light, gray or gray-dark from the name: shade
// variants (-l-n, -d-n), light/dark words, or a 100-900 shade number.
func grayShade(n string) string {
	switch {
	case strings.Contains(n, "-d-"), strings.Contains(n, "dark"):
		return "gray-dark"
	case strings.Contains(n, "-l-"), strings.Contains(n, "light"):
		return "gray-light"
	}

	if m := shadeNumber.FindAllString(n, -1); len(m) > 0 {
		shade, err := strconv.Atoi(m[len(m)-1])
		if err == nil {
			switch {
			case shade >= 600:
				return "gray-dark"
			case shade > 0 && shade <= 300:
				return "gray-light"
			}
		}
	}
	return "gray"
}

// dialectColorRules emits color utilities under simplified names. When two
// variables simplify to the same class the first one wins.
func dialectColorRules(groups []ColorGroup) []rule {
	var rules []rule
	for _, kind := range colorUtilityKinds {
		seen := make(map[string]bool)
		var kindRules []rule
		for _, group := range groups {
			for _, token := range group.Colors {
				if !kind.enabled(token.UtilityConfig) {
					continue
				}
				for _, name := range utilityVariableNames(token) {
					selector := "." + kind.prefix + "-" + SimplifyColorName(name)
					if seen[selector] {
						continue
					}
					seen[selector] = true
					kindRules = append(kindRules, rule{
						selector: selector,
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
