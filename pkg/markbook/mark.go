package markbook

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnrecognizedMarkFormat is returned for mark tokens that are neither numeric nor a known sentinel
	ErrUnrecognizedMarkFormat = errors.New("unrecognized mark format")
	// ErrMalformedRowSequence is returned when a course's rows cannot form a markbook tree
	ErrMalformedRowSequence = errors.New("malformed row sequence")
)

// MarkKind discriminates the Mark variants
type MarkKind int

const (
	MarkAbsent MarkKind = iota
	MarkNumeric
	MarkSentinel
)

// Sentinel is a named non-numeric mark status
type Sentinel string

const (
	Excused       Sentinel = "EXC"
	NotHandedIn   Sentinel = "NHI"
	AbsentStudent Sentinel = "ABS"
)

// noneToken is what the classifier emits for an empty cell
const noneToken = "None"

// Mark is either a number, a sentinel status, or absent
type Mark struct {
	Kind     MarkKind
	Value    float64
	Sentinel Sentinel
}

// Numeric builds a numeric mark
func Numeric(v float64) Mark {
	return Mark{Kind: MarkNumeric, Value: v}
}

// SentinelMark builds a sentinel mark
func SentinelMark(s Sentinel) Mark {
	return Mark{Kind: MarkSentinel, Sentinel: s}
}

// IsNumeric reports whether the mark can take part in averaging
func (m Mark) IsNumeric() bool {
	return m.Kind == MarkNumeric
}

// IsAbsent reports whether the cell was blank
func (m Mark) IsAbsent() bool {
	return m.Kind == MarkAbsent
}

// Float returns the numeric value and whether there is one
func (m Mark) Float() (float64, bool) {
	return m.Value, m.Kind == MarkNumeric
}

func (m Mark) String() string {
	switch m.Kind {
	case MarkNumeric:
		return strconv.FormatFloat(m.Value, 'f', -1, 64)
	case MarkSentinel:
		return string(m.Sentinel)
	default:
		return ""
	}
}

// MarshalJSON encodes numbers as numbers, sentinels as strings and absent marks as null
func (m Mark) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MarkNumeric:
		return json.Marshal(m.Value)
	case MarkSentinel:
		return json.Marshal(string(m.Sentinel))
	default:
		return []byte("null"), nil
	}
}

func (m *Mark) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = Mark{}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*m = Numeric(v)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to decode mark: %w", err)
	}
	parsed, err := ParseMark(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMark normalizes a raw mark cell
func ParseMark(raw string) (Mark, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noneToken {
		return Mark{}, nil
	}

	switch s := Sentinel(raw); s {
	case Excused, NotHandedIn, AbsentStudent:
		return SentinelMark(s), nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Mark{}, fmt.Errorf("%w: %q", ErrUnrecognizedMarkFormat, raw)
	}
	return Numeric(v), nil
}
