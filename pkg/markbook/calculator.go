package markbook

import (
	"errors"
	"fmt"
)

// ErrNothingToCalculate is returned when no node in a layer has a usable mark, weight and denominator
var ErrNothingToCalculate = errors.New("no weighted marks to calculate")

// Weighted is a node that can take part in a layer calculation
type Weighted struct {
	Mark        Mark
	Weight      Mark
	Denominator Mark
}

// CalculateLayer returns the weighted fraction (0..1) of a layer.
// Nodes missing a numeric mark, weight or denominator are ignored (EXC, ABS and blanks),
// negative marks and weights count as 0 and a denominator <= 0 drops the node.
func CalculateLayer(layer []Weighted) (float64, error) {
	var sum, total float64
	for _, n := range layer {
		mark, ok1 := n.Mark.Float()
		weight, ok2 := n.Weight.Float()
		denom, ok3 := n.Denominator.Float()
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		if mark < 0 {
			mark = 0
		}
		if weight < 0 {
			weight = 0
		}
		if denom <= 0 {
			continue
		}
		total += weight
		sum += mark / denom * weight
	}
	if total == 0 {
		return 0, ErrNothingToCalculate
	}
	return sum / total, nil
}

func assignmentLayer(as []Assignment) []Weighted {
	layer := make([]Weighted, 0, len(as))
	for _, a := range as {
		layer = append(layer, Weighted{a.Mark, a.Weight, a.Denominator})
	}
	return layer
}

// recalculated returns n with its mark rescaled from children, or n unchanged when
// the children have nothing to contribute or n itself is not numeric.
func recalculated(n Weighted, children []Weighted) Weighted {
	if n.Mark.Kind == MarkSentinel || len(children) == 0 {
		return n
	}
	denom, ok := n.Denominator.Float()
	if !ok {
		return n
	}
	frac, err := CalculateLayer(children)
	if err != nil {
		return n
	}
	n.Mark = Numeric(frac * denom)
	return n
}

// CalculateCourse recomputes the course percentage bottom-up from the assignment marks:
// sections from their assignments, units from their sections and direct assignments,
// and the course from its units.
func CalculateCourse(c Course) (float64, error) {
	top := make([]Weighted, 0, len(c.Units))
	for _, u := range c.Units {
		children := assignmentLayer(u.Assignments)
		for _, s := range u.Sections {
			children = append(children, recalculated(Weighted{s.Mark, s.Weight, s.Denominator}, assignmentLayer(s.Assignments)))
		}
		top = append(top, recalculated(Weighted{u.Mark, u.Weight, u.Denominator}, children))
	}

	frac, err := CalculateLayer(top)
	if err != nil {
		return 0, fmt.Errorf("course %q: %w", c.Name, err)
	}
	return frac * 100, nil
}
