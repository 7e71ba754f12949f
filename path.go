package gear

import (
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Draw an elliptical arc from the current location to the point.
	ArcToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ArcToKind:
		return "ArcTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command of a [Path]. It acts as a tagged
// union over the commands of the SVG path mini-language.
//
// P0 is the end point for MoveTo, LineTo and ArcTo. QuadTo uses P0 as the
// control point and P1 as the end point, CubicTo uses P0 and P1 as control
// points and P2 as the end point. Radii, XRotation, LargeArc and Sweep are
// only meaningful for ArcTo.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point

	Radii     Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
}

func (el PathElement) String() string {
	if el.Kind == ArcToKind {
		return fmt.Sprintf("%s(%s, %g, %t, %t, %s)", el.Kind, el.Radii, el.XRotation, el.LargeArc, el.Sweep, el.P0)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

// EndPoint returns the point the pen is at after drawing el. ClosePath has no
// end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf() ||
		el.Radii.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		el.Radii.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// ArcTo returns an elliptical arc to pt with the given radii and x-axis
// rotation (in degrees), following the SVG arc flag semantics.
func ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) PathElement {
	return PathElement{
		Kind:      ArcToKind,
		P0:        pt,
		Radii:     radii,
		XRotation: xRotation,
		LargeArc:  largeArc,
		Sweep:     sweep,
	}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Path is a sequence of path elements together with the fill and stroke
// styles of the element it renders to. Styles are opaque and copied
// verbatim into the output.
type Path struct {
	Elements []PathElement
	Fill     string
	Stroke   string
}

func (p *Path) Push(el PathElement) {
	p.Elements = append(p.Elements, el)
}

// MoveTo pushes a [MoveTo] element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a [LineTo] element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a [QuadTo] element onto the path.
func (p *Path) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a [CubicTo] element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ArcTo pushes an [ArcTo] element onto the path.
func (p *Path) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, pt Point) {
	p.Push(ArcTo(radii, xRotation, largeArc, sweep, pt))
}

// ClosePath pushes a [ClosePath] element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Len returns the number of elements in the path.
func (p Path) Len() int { return len(p.Elements) }

// All returns an iterator over the path's elements.
func (p Path) All() iter.Seq[PathElement] { return slices.Values(p.Elements) }

// Subpaths returns the number of contours in the path, i.e. the number of
// MoveTo elements.
func (p Path) Subpaths() int {
	n := 0
	for _, el := range p.Elements {
		if el.Kind == MoveToKind {
			n++
		}
	}
	return n
}

func (p Path) IsInf() bool {
	for _, el := range p.Elements {
		if el.IsInf() {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for _, el := range p.Elements {
		if el.IsNaN() {
			return true
		}
	}
	return false
}
