package markbook

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type builderState int

const (
	inUnit builderState = iota
	inSection
	inAssignment
)

var rowValidator = validator.New()

// Builder turns a course's ordered rows into its unit tree.
// Each call to Build starts from an empty tree.
type Builder struct {
	log    zerolog.Logger
	course string

	state      builderState
	units      []Unit
	unit       *Unit
	section    *Section
	assignment *Assignment
}

// NewBuilder creates a builder for the named course. Unrecognized mark tokens are reported on log.
func NewBuilder(log zerolog.Logger, course string) *Builder {
	return &Builder{
		log:    log.With().Str("course", course).Logger(),
		course: course,
	}
}

// BuildUnits is a shorthand for NewBuilder(log, course).Build(rows)
func BuildUnits(log zerolog.Logger, course string, rows []Row) ([]Unit, error) {
	return NewBuilder(log, course).Build(rows)
}

// Build consumes rows (row 0 is the course mark header, row 1 opens the first unit) and returns the units in row order.
func (b *Builder) Build(rows []Row) ([]Unit, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: course %q has %d rows, need at least 2", ErrMalformedRowSequence, b.course, len(rows))
	}

	b.units = nil
	b.section = nil
	b.assignment = nil

	for i, row := range rows[1:] {
		if err := validateRow(row); err != nil {
			return nil, fmt.Errorf("%w: course %q row %d: %v", ErrMalformedRowSequence, b.course, i+1, err)
		}
	}

	b.startUnit(rows[1])

	for _, row := range rows[2:] {
		switch row.Role {
		case RoleUnit:
			b.flush(inUnit)
			b.startUnit(row)
		case RoleSection:
			b.unit.HasSections = true
			b.flush(inSection)
			b.startSection(row)
		case RoleAssignment:
			b.flush(inAssignment)
			b.startAssignment(row)
		}
	}

	b.flush(inUnit)
	return b.units, nil
}

func validateRow(row Row) error {
	if err := rowValidator.Struct(row); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("field %s failed %q", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}

// flush commits every pending node at or below level. An assignment is pending only in the
// inAssignment state; it goes to the open section, or to the unit when none has been opened yet.
func (b *Builder) flush(level builderState) {
	if b.state == inAssignment {
		if b.section != nil {
			b.section.Assignments = append(b.section.Assignments, *b.assignment)
		} else {
			b.unit.Assignments = append(b.unit.Assignments, *b.assignment)
		}
		b.assignment = nil
		b.state = inSection
		if b.section == nil {
			b.state = inUnit
		}
	}
	if level <= inSection && b.section != nil {
		b.unit.Sections = append(b.unit.Sections, *b.section)
		b.section = nil
		b.state = inUnit
	}
	if level == inUnit && b.unit != nil {
		b.units = append(b.units, *b.unit)
		b.unit = nil
	}
}

func (b *Builder) startUnit(row Row) {
	b.unit = &Unit{
		Name:        row.Name,
		Mark:        b.mark(row, "mark", row.RawMark),
		Weight:      b.mark(row, "weight", row.Weight),
		Denominator: b.mark(row, "denominator", row.Denominator),
		Comment:     row.Comment,
		Sections:    []Section{},
		Assignments: []Assignment{},
	}
	b.state = inUnit
}

func (b *Builder) startSection(row Row) {
	b.section = &Section{
		Name:        row.Name,
		Mark:        b.mark(row, "mark", row.RawMark),
		Weight:      b.mark(row, "weight", row.Weight),
		Denominator: b.mark(row, "denominator", row.Denominator),
		Comment:     row.Comment,
		Assignments: []Assignment{},
	}
	b.state = inSection
}

func (b *Builder) startAssignment(row Row) {
	a := &Assignment{
		Name:        row.Name,
		Mark:        b.mark(row, "mark", row.RawMark),
		Weight:      b.mark(row, "weight", row.Weight),
		Denominator: b.mark(row, "denominator", row.Denominator),
		Date:        cleanDate(row.Date),
		Comment:     row.Comment,
		Unit:        b.unit.Name,
	}
	if b.unit.HasSections && b.section != nil {
		a.Section = b.section.Name
	}
	b.assignment = a
	b.state = inAssignment
}

// mark parses a cell, logging and dropping tokens that are not marks
func (b *Builder) mark(row Row, field, raw string) Mark {
	m, err := ParseMark(raw)
	if err != nil {
		b.log.Warn().Err(err).
			Str("row", row.Name).
			Str("field", field).
			Msg("treating unrecognized mark as absent")
		return Mark{}
	}
	return m
}

func cleanDate(raw string) string {
	if raw == noneToken {
		return ""
	}
	return raw
}
