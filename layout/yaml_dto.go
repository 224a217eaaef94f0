package layout

import (
	"fmt"
	"strings"
)

type yamlLayout struct {
	Icons []yamlEntry `yaml:"icons"`
}

type yamlEntry struct {
	Index    *int     `yaml:"index"`
	Kind     string   `yaml:"kind"`
	Name     string   `yaml:"name"`
	Outline  *bool    `yaml:"outline"`
	OffsetX  float64  `yaml:"offset_x"`
	OffsetY  float64  `yaml:"offset_y"`
	Scale    *float64 `yaml:"scale"`
	Text     string   `yaml:"text"`
	Center   bool     `yaml:"center"`
	Position string   `yaml:"position"`
	Side     string   `yaml:"side"`
	Section  string   `yaml:"section"`
	Divided  bool     `yaml:"divided"`
}

func mapEntry(y yamlEntry) (Entry, error) {
	if y.Index == nil {
		return Entry{}, fmt.Errorf("%w: missing index", ErrInvalidLayout)
	}
	if *y.Index < 0 || *y.Index > MaxIndex {
		return Entry{}, fmt.Errorf("%w: index %d out of range [0, %d]", ErrInvalidLayout, *y.Index, MaxIndex)
	}

	e := Entry{
		Index:    *y.Index,
		Kind:     Kind(strings.TrimSpace(y.Kind)),
		Name:     strings.TrimSpace(y.Name),
		Outline:  true,
		OffsetX:  y.OffsetX,
		OffsetY:  y.OffsetY,
		Text:     y.Text,
		Center:   y.Center,
		Position: y.Position,
		Side:     y.Side,
		Section:  y.Section,
		Divided:  y.Divided,
	}
	if y.Outline != nil {
		e.Outline = *y.Outline
	}
	if y.Scale != nil {
		if *y.Scale <= 0 {
			return Entry{}, fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidLayout, *y.Scale)
		}
		e.Scale = *y.Scale
	}

	switch e.Kind {
	case KindEmpty, KindStickCenter, KindStickVertical, KindStickHorizontal,
		KindHeading, KindHeadingDecoration:
	case KindIcon:
		if e.Name == "" {
			return Entry{}, fmt.Errorf("%w: icon entry needs a name", ErrInvalidLayout)
		}
	case KindText:
		if e.Text == "" {
			return Entry{}, fmt.Errorf("%w: text entry needs a text", ErrInvalidLayout)
		}
	case KindStick:
		if !oneOf(e.Position, stickPositions) {
			return Entry{}, fmt.Errorf("%w: invalid stick position %q", ErrInvalidLayout, e.Position)
		}
	case KindBarCap:
		if !oneOf(e.Side, barCapSides) {
			return Entry{}, fmt.Errorf("%w: invalid bar cap side %q", ErrInvalidLayout, e.Side)
		}
	case KindBar:
		if !oneOf(e.Section, barSections) {
			return Entry{}, fmt.Errorf("%w: invalid bar section %q", ErrInvalidLayout, e.Section)
		}
	case "":
		return Entry{}, fmt.Errorf("%w: missing kind", ErrInvalidLayout)
	default:
		return Entry{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidLayout, e.Kind)
	}

	return e, nil
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
