package skelegen

import "fmt"

// ParseTarget maps a config value to a target; "" is the plain stylesheet
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case "", TargetCSS:
		return TargetCSS, nil
	case TargetDialect:
		return TargetDialect, nil
	}
	return "", fmt.Errorf("unknown target %q (want %q or %q)", s, TargetCSS, TargetDialect)
}

// CompileTarget compiles ws with the assembler of the given target
func CompileTarget(ws Workspace, target Target, opts AssembleOptions) Result {
	if target == TargetDialect {
		return CompileDialect(ws, opts)
	}
	return Compile(ws, opts)
}

// DefaultFluid is the fluid formula a target uses when none is configured
func (t Target) DefaultFluid() FluidStrategy {
	if t == TargetDialect {
		return FluidCalc
	}
	return FluidExplicitVW
}
