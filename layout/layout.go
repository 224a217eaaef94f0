// Package layout loads the table describing which glyph goes into which tile
// of the OSD font.
package layout

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// MaxIndex is the highest tile index of a 256 character OSD font.
const MaxIndex = 255

// ErrInvalidLayout is wrapped by every validation error.
var ErrInvalidLayout = errors.New("invalid layout")

//go:embed default.yaml
var defaultLayout []byte

// Kind identifies how a tile is drawn.
type Kind string

const (
	KindEmpty             Kind = "empty"
	KindIcon              Kind = "icon"
	KindText              Kind = "text"
	KindStick             Kind = "stick"
	KindStickCenter       Kind = "stick-center"
	KindStickVertical     Kind = "stick-vertical"
	KindStickHorizontal   Kind = "stick-horizontal"
	KindHeading           Kind = "heading"
	KindHeadingDecoration Kind = "heading-decoration"
	KindBarCap            Kind = "bar-cap"
	KindBar               Kind = "bar"
)

var (
	stickPositions = []string{"high", "middle", "low"}
	barCapSides    = []string{"left", "right"}
	barSections    = []string{"full", "half_full", "empty", "end"}
)

// Entry describes a single tile. Only the fields relevant to Kind are used.
type Entry struct {
	Index int
	Kind  Kind

	// icon
	Name    string
	Outline bool
	OffsetX float64 // fraction of the tile width
	OffsetY float64 // fraction of the tile height

	// icon and text
	Scale float64

	// text
	Text   string
	Center bool

	Position string // stick
	Side     string // bar-cap
	Section  string // bar
	Divided  bool   // heading
}

// Layout is an ordered list of entries.
// Entries are painted in order, so later entries win over the generated sheets.
type Layout struct {
	Entries []Entry
}

// Error describes a layout that could not be loaded or validated.
type Error struct {
	Path  string
	Entry int // position of the offending entry, -1 when not entry specific
	Err   error
}

func (e *Error) Error() string {
	src := e.Path
	if src == "" {
		src = "layout"
	}
	if e.Entry >= 0 {
		return fmt.Sprintf("%s: entry %d: %v", src, e.Entry, e.Err)
	}
	return fmt.Sprintf("%s: %v", src, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Default returns the built-in layout.
func Default() *Layout {
	l, err := parse("default.yaml", defaultLayout)
	if err != nil {
		panic(fmt.Sprintf("layout: broken default layout: %v", err))
	}
	return l
}

// Load reads and validates the layout file at path.
func Load(path string) (*Layout, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Entry: -1, Err: err}
	}
	return parse(path, b)
}

// Parse decodes and validates a YAML layout.
func Parse(b []byte) (*Layout, error) {
	return parse("", b)
}

// Indices returns the sorted tile indices used by the layout.
func (l *Layout) Indices() []int {
	idx := make([]int, 0, len(l.Entries))
	for _, e := range l.Entries {
		idx = append(idx, e.Index)
	}
	sort.Ints(idx)
	return idx
}

func parse(path string, b []byte) (*Layout, error) {
	var doc yamlLayout
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, &Error{Path: path, Entry: -1, Err: fmt.Errorf("%w: %v", ErrInvalidLayout, err)}
	}

	l := &Layout{Entries: make([]Entry, 0, len(doc.Icons))}
	seen := make(map[int]int, len(doc.Icons))

	for i, yi := range doc.Icons {
		e, err := mapEntry(yi)
		if err != nil {
			return nil, &Error{Path: path, Entry: i, Err: err}
		}
		if prev, ok := seen[e.Index]; ok {
			return nil, &Error{Path: path, Entry: i, Err: fmt.Errorf("%w: index %d already used by entry %d", ErrInvalidLayout, e.Index, prev)}
		}
		seen[e.Index] = i
		l.Entries = append(l.Entries, e)
	}

	return l, nil
}
