package gear

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The number of decimal digits coordinates are rounded to. Trailing zeros
	// are removed after rounding. A negative value chooses the highest
	// precision necessary to unambiguously represent any given coordinate.
	Precision int
}

// MaxPrecision is the number of fractional digits needed to write any float64
// exactly. Larger precisions produce the same output.
const MaxPrecision = 1074

// ShortestSVG formats numbers with the shortest exact representation.
var ShortestSVG = SVGOptions{Precision: -1}

// FormatNumber formats n with prec decimal digits, stripping trailing zeros
// and a trailing decimal point. A negative prec selects the shortest
// representation that round-trips. Values that round to zero are formatted
// as "0", never "-0".
func FormatNumber(n float64, prec int) string {
	s := strconv.FormatFloat(n, 'f', prec, 64)
	if prec >= 0 && strings.IndexByte(s, '.') != -1 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w. Commands and their arguments are separated by
// single spaces, e.g. "M 1 2 L 3 4 Z".
//
// See [SVG] for a version that returns a string instead.
//
// The current implementation doesn't take any special care to produce a
// short string (using relative movement or implicit commands).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return FormatNumber(n, opts.Precision)
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M %s %s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L %s %s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q %s %s %s %s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C %s %s %s %s %s %s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ArcToKind:
			writef("A %s %s %s %d %d %s %s",
				format(el.Radii.X), format(el.Radii.Y),
				format(el.XRotation),
				flag(el.LargeArc), flag(el.Sweep),
				format(el.P0.X), format(el.P0.Y))
		case ClosePathKind:
			write(z)
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return err
}

// Data returns the path's SVG path data, the value of the d attribute.
func (p Path) Data(opts SVGOptions) string {
	return SVG(p.All(), opts)
}

// SVG renders the path as a single SVG path element carrying the path data
// and the fill and stroke styles. The styles are not escaped.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG writes the path as a single SVG path element to w.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	if _, err := io.WriteString(w, `<path d="`); err != nil {
		return err
	}
	if err := WriteSVG(w, p.All(), opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, `" fill="%s" stroke="%s" />`, p.Fill, p.Stroke)
	return err
}

func (p Path) String() string {
	return p.SVG(ShortestSVG)
}
