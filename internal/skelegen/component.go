package skelegen

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ComponentType is the kind of UI element a component styles
type ComponentType string

// Known component types
const (
	ComponentButton   ComponentType = "button"
	ComponentInput    ComponentType = "input"
	ComponentSelector ComponentType = "selector"
	ComponentTextarea ComponentType = "textarea"
	ComponentCheckbox ComponentType = "checkbox"
	ComponentRadio    ComponentType = "radio"
	ComponentLink     ComponentType = "link"
	ComponentCard     ComponentType = "card"
)

// Style targets used by checkbox and radio components
const (
	TargetBox   = "box"
	TargetCheck = "check"
)

// StyleProp is one declaration of a component. Target addresses a visual
// proxy element of checkbox and radio components.
type StyleProp struct {
	Prop   string `json:"prop"`
	Value  string `json:"value"`
	Target string `json:"target,omitempty"`
}

// StateStyles maps a pseudo-class name ("hover") to its declarations
type StateStyles map[string][]StyleProp

// ModifierTarget tells whether a modifier composes with the component class
// on the same element or addresses a descendant element.
type ModifierTarget interface {
	selector(component, modifier string) string
}

// SameElement modifiers compose on the component element: .btn.large
type SameElement struct{}

// Descendant modifiers address a child element: .select .option
type Descendant struct {
	Tag string
}

func (SameElement) selector(component, modifier string) string {
	return component + "." + modifier
}

func (Descendant) selector(component, modifier string) string {
	return component + " ." + modifier
}

// Modifier is a named variant of a component with its own states
type Modifier struct {
	ID     string
	Name   string
	Target ModifierTarget
	Styles []StyleProp
	States StateStyles
}

type modifierJSON struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Tag    string      `json:"tag,omitempty"`
	Styles []StyleProp `json:"styles"`
	States StateStyles `json:"states,omitempty"`
}

// MarshalJSON encodes the target as the optional "tag" field
func (m Modifier) MarshalJSON() ([]byte, error) {
	out := modifierJSON{ID: m.ID, Name: m.Name, Styles: m.Styles, States: m.States}
	if d, ok := m.Target.(Descendant); ok {
		out.Tag = d.Tag
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a modifier; a non-empty "tag" makes it a Descendant
func (m *Modifier) UnmarshalJSON(data []byte) error {
	var in modifierJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*m = Modifier{ID: in.ID, Name: in.Name, Styles: in.Styles, States: in.States, Target: SameElement{}}
	if tag := strings.TrimSpace(in.Tag); tag != "" {
		m.Target = Descendant{Tag: tag}
	}
	return nil
}

// Component is one reusable UI element's full CSS surface
type Component struct {
	ID        string        `json:"id"`
	Type      ComponentType `json:"type"`
	Name      string        `json:"name"` // CSS class name
	Styles    []StyleProp   `json:"styles"`
	States    StateStyles   `json:"states,omitempty"`
	Modifiers []Modifier    `json:"modifiers,omitempty"`
}

// Clone returns a deep copy sharing no slices or maps with c
func (c Component) Clone() Component {
	out := c
	out.Styles = cloneStyles(c.Styles)
	out.States = c.States.clone()
	if c.Modifiers != nil {
		out.Modifiers = make([]Modifier, len(c.Modifiers))
		for i, m := range c.Modifiers {
			m.Styles = cloneStyles(m.Styles)
			m.States = m.States.clone()
			out.Modifiers[i] = m
		}
	}
	return out
}

func cloneStyles(styles []StyleProp) []StyleProp {
	if styles == nil {
		return nil
	}
	return append([]StyleProp(nil), styles...)
}

func (s StateStyles) clone() StateStyles {
	if s == nil {
		return nil
	}
	out := make(StateStyles, len(s))
	for k, v := range s {
		out[k] = cloneStyles(v)
	}
	return out
}

// stateOrder fixes the emission order of common pseudo-classes; others follow alphabetically
var stateOrder = []string{
	"hover", "focus", "focus-visible", "focus-within", "active",
	"visited", "checked", "indeterminate", "disabled", "placeholder",
}

// orderedStates returns the state names of s in emission order
func (s StateStyles) orderedStates() []string {
	rank := make(map[string]int, len(stateOrder))
	for i, st := range stateOrder {
		rank[st] = i
	}

	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, okI := rank[names[i]]
		rj, okJ := rank[names[j]]
		switch {
		case okI && okJ:
			return ri < rj
		case okI != okJ:
			return okI
		default:
			return names[i] < names[j]
		}
	})
	return names
}

// inputStates are driven by the hidden native input of checkbox/radio components
var inputStates = map[string]bool{
	"checked": true, "indeterminate": true, "focus": true, "focus-visible": true, "disabled": true,
}

// ScopedStylesheet is the CSS of one live preview
type ScopedStylesheet struct {
	ScopeID string `json:"scopeId"`
	CSS     string `json:"css"`
}

// NewScopeID returns a fresh, collision-resistant scope class name
func NewScopeID() string {
	return "sk-" + uuid.NewString()
}

// ScopeComponent compiles a component preview under a freshly generated scope id
func ScopeComponent(ws Workspace, c Component, opts AssembleOptions) ScopedStylesheet {
	return ScopeComponentWithID(ws, c, NewScopeID(), opts)
}

// ScopeComponentWithID compiles a component preview under scopeID: the
// workspace variables on the scope class, then the component rules.
func ScopeComponentWithID(ws Workspace, c Component, scopeID string, opts AssembleOptions) ScopedStylesheet {
	scope := "." + strings.TrimPrefix(scopeID, ".")
	subject := scope + " ." + ClassNameFromLabel(c.Name)
	proxy := c.Type == ComponentCheckbox || c.Type == ComponentRadio

	var rules []rule
	if proxy {
		rules = append(rules, rule{selector: subject + " input", decls: []Property{
			{Property: "position", Value: "absolute"},
			{Property: "opacity", Value: "0"},
			{Property: "width", Value: "0"},
			{Property: "height", Value: "0"},
		}})
	}
	rules = append(rules, subjectRules(subject, c.Styles, c.States, proxy)...)
	for _, m := range c.Modifiers {
		target := m.Target
		if target == nil {
			target = SameElement{}
		}
		rules = append(rules, subjectRules(target.selector(subject, ClassNameFromLabel(m.Name)), m.Styles, m.States, proxy)...)
	}

	var b strings.Builder
	writeVariableBlock(&b, scope, variableDeclarations(ws, opts.fluid(FluidExplicitVW)))
	for _, r := range rules {
		writeRule(&b, r)
	}

	css, _ := opts.finish(b.String())
	return ScopedStylesheet{ScopeID: strings.TrimPrefix(scopeID, "."), CSS: css}
}

// subjectRules emits the base rule and the state rules of one selector.
// With proxy set, styles are split by target and input-driven states use
// the adjacent-sibling combinator on the visual box.
func subjectRules(subject string, styles []StyleProp, states StateStyles, proxy bool) []rule {
	var rules []rule

	for _, group := range groupByTarget(styles, proxy) {
		rules = append(rules, rule{selector: subject + targetSuffix(group.target), decls: group.decls})
	}

	for _, state := range states.orderedStates() {
		for _, group := range groupByTarget(states[state], proxy) {
			var selector string
			if proxy && inputStates[state] {
				selector = subject + " input:" + state + " + .box" + checkedSuffix(group.target)
			} else {
				selector = subject + ":" + state + targetSuffix(group.target)
			}
			rules = append(rules, rule{selector: selector, decls: group.decls})
		}
	}

	return rules
}

type targetGroup struct {
	target string
	decls  []Property
}

// groupByTarget splits styles by target in first-seen order. Without proxy
// elements every style lands on the subject itself.
func groupByTarget(styles []StyleProp, proxy bool) []targetGroup {
	var groups []targetGroup
	index := make(map[string]int)

	for _, s := range styles {
		if strings.TrimSpace(s.Prop) == "" {
			continue
		}
		target := ""
		if proxy {
			target = strings.TrimSpace(s.Target)
		}
		i, ok := index[target]
		if !ok {
			i = len(groups)
			index[target] = i
			groups = append(groups, targetGroup{target: target})
		}
		groups[i].decls = append(groups[i].decls, Property{Property: s.Prop, Value: s.Value})
	}

	return groups
}

func targetSuffix(target string) string {
	switch target {
	case "":
		return ""
	case TargetBox:
		return " .box"
	case TargetCheck:
		return " .box .check"
	}
	return " ." + target
}

func checkedSuffix(target string) string {
	switch target {
	case "", TargetBox:
		return ""
	case TargetCheck:
		return " .check"
	}
	return " ." + target
}
