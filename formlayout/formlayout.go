// Package formlayout positions controls inside a container by attaching
// their edges either to a fraction of the container or to the edge of a
// sibling control.
package formlayout

import (
	"errors"
	"fmt"
)

// Denominator is the fixed denominator of every container-relative attachment.
// An attachment with Numerator 50 refers to the middle of the container.
const Denominator = 100

var (
	// ErrCycle is returned when controls are attached to each other in a loop.
	ErrCycle = errors.New("formlayout: cyclic attachment")

	// ErrUnknownControl is returned when an attachment refers to a control
	// that is not laid out in the same container.
	ErrUnknownControl = errors.New("formlayout: attachment to unknown control")
)

// Attachment describes where one edge of a control goes.
//
// When Control is nil the edge is placed at Numerator/Denominator of the
// container extent plus Offset. Otherwise it is placed at the adjacent edge of
// Control plus Offset: a left or top edge follows the control's right or
// bottom edge, a right or bottom edge follows the control's left or top edge.
type Attachment struct {
	Numerator int
	Offset    int
	Control   any
}

// Attach returns a container-relative attachment.
func Attach(numerator, offset int) *Attachment {
	return &Attachment{Numerator: numerator, Offset: offset}
}

// AttachTo returns an attachment relative to a sibling control.
func AttachTo(control any, offset int) *Attachment {
	return &Attachment{Control: control, Offset: offset}
}

// Data holds the attachments of a single control. Edges left nil are derived
// from the opposite edge and the preferred size; a control with neither edge
// attached on an axis is placed at the origin of that axis.
type Data struct {
	Left   *Attachment
	Top    *Attachment
	Right  *Attachment
	Bottom *Attachment

	// Width and Height override the control's own preferred size when > 0.
	Width  int
	Height int
}

// Rect is a control's computed bounds relative to the container origin.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Child is one control to be laid out.
type Child struct {
	// Control identifies the child; attachments refer to it by this value.
	Control    any
	Data       *Data
	PrefWidth  int
	PrefHeight int
}

type axis int

const (
	horizontal axis = iota
	vertical
)

type span struct {
	pos  int
	size int
}

const (
	unvisited = iota
	visiting
	done
)

type solver struct {
	width    int
	height   int
	children []Child
	index    map[any]int
	state    [2][]int
	spans    [2][]span
}

// Solve computes the bounds of every child inside a container of the given
// client size. The returned slice is parallel to children.
func Solve(width, height int, children []Child) ([]Rect, error) {
	s := &solver{
		width:    width,
		height:   height,
		children: children,
		index:    make(map[any]int, len(children)),
	}
	for a := range s.state {
		s.state[a] = make([]int, len(children))
		s.spans[a] = make([]span, len(children))
	}
	for i, c := range children {
		if c.Control != nil {
			s.index[c.Control] = i
		}
	}

	rects := make([]Rect, len(children))
	for i := range children {
		h, err := s.resolve(horizontal, i)
		if err != nil {
			return nil, err
		}
		v, err := s.resolve(vertical, i)
		if err != nil {
			return nil, err
		}
		rects[i] = Rect{X: h.pos, Y: v.pos, Width: h.size, Height: v.size}
	}
	return rects, nil
}

func (s *solver) resolve(a axis, i int) (span, error) {
	switch s.state[a][i] {
	case done:
		return s.spans[a][i], nil
	case visiting:
		return span{}, fmt.Errorf("%w: control %d", ErrCycle, i)
	}
	s.state[a][i] = visiting

	c := s.children[i]
	d := c.Data
	if d == nil {
		d = &Data{}
	}

	var lead, trail *Attachment
	var pref, extent int
	if a == horizontal {
		lead, trail = d.Left, d.Right
		pref, extent = c.PrefWidth, s.width
		if d.Width > 0 {
			pref = d.Width
		}
	} else {
		lead, trail = d.Top, d.Bottom
		pref, extent = c.PrefHeight, s.height
		if d.Height > 0 {
			pref = d.Height
		}
	}

	var sp span
	switch {
	case lead != nil && trail != nil:
		start, err := s.edge(a, lead, extent, true)
		if err != nil {
			return span{}, err
		}
		end, err := s.edge(a, trail, extent, false)
		if err != nil {
			return span{}, err
		}
		sp = span{pos: start, size: max(end-start, 0)}
	case lead != nil:
		start, err := s.edge(a, lead, extent, true)
		if err != nil {
			return span{}, err
		}
		sp = span{pos: start, size: pref}
	case trail != nil:
		end, err := s.edge(a, trail, extent, false)
		if err != nil {
			return span{}, err
		}
		sp = span{pos: end - pref, size: pref}
	default:
		sp = span{pos: 0, size: pref}
	}

	s.spans[a][i] = sp
	s.state[a][i] = done
	return sp, nil
}

// edge resolves an attachment to a coordinate on axis a. leading is true for
// left and top edges.
func (s *solver) edge(a axis, at *Attachment, extent int, leading bool) (int, error) {
	if at.Control == nil {
		return at.Numerator*extent/Denominator + at.Offset, nil
	}
	j, ok := s.index[at.Control]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownControl, at.Control)
	}
	other, err := s.resolve(a, j)
	if err != nil {
		return 0, err
	}
	if leading {
		return other.pos + other.size + at.Offset, nil
	}
	return other.pos + at.Offset, nil
}
