package h2m

import "strings"

// NameMax and LineMax are the two length ceilings §4.5 names; exceeding
// either produces a warning but never a rename or a commented-out line.
const (
	NameMax = 63
	LineMax = 132
)

// NamePolicy legalizes identifiers, enforces length limits, and consults a
// NameRegistry for duplicate detection (§4.5).
type NamePolicy struct {
	Autobind bool
	Registry NameRegistry
	Diags    *Diagnostics
}

// Legalize renames an illegal (leading-underscore) identifier to
// "h2m<name>", returning the bind name to carry in BIND(C, name="...")
// when Autobind is set (§3 invariant 5, §7 error class 3).
func (p *NamePolicy) Legalize(name string, loc SourceLocation) (id string, bindName string) {
	id = name
	if strings.HasPrefix(name, "_") {
		id = "h2m" + name
		if p.Autobind {
			bindName = name
		}
		p.Diags.Warn(loc, "illegal identifier %q renamed to %q", name, id)
	}
	if len(id) > NameMax {
		p.Diags.Warn(loc, "identifier %q exceeds %d characters", id, NameMax)
	}
	return id, bindName
}

// CheckLine warns when any physical line of an emission exceeds LineMax.
// An emission may itself span several physical lines via "&" continuation
// (e.g. a struct field's pointer-demotion comment); each one is measured
// separately, since Fortran's line-length limit applies per physical line,
// not to the emission as a whole (§4.5).
func (p *NamePolicy) CheckLine(text string, loc SourceLocation) {
	trimmed := strings.TrimSuffix(text, "\n")
	for _, line := range strings.Split(trimmed, "\n") {
		if len(line) > LineMax {
			p.Diags.Warn(loc, "emitted line exceeds %d characters", LineMax)
			return
		}
	}
}

// Register consults the NameRegistry, returning false on collision. The
// caller is responsible for commenting out the declaration on collision
// (§7 error class 2).
func (p *NamePolicy) Register(id string) bool {
	return p.Registry.Register(id)
}
