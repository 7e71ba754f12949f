package gear

import (
	"bytes"
	"context"
	"encoding/xml"
	"log/slog"
	"math"
	"strings"
	"testing"
)

// testSettings returns a small gear centered on the origin with symmetric
// spikes and grooves.
func testSettings(cutoff int) Settings {
	return Settings{
		Radius:          10,
		InnerRadius:     5,
		Center:          Pt(0, 0),
		Rotation:        0,
		GrooveCount:     4,
		GrooveDepth:     0.5,
		WidthProportion: 0,
		Cutoff:          cutoff,
	}
}

func TestDefaultSettings(t *testing.T) {
	want := Settings{
		Radius:          90,
		InnerRadius:     45,
		Center:          Pt(100, 100),
		Rotation:        216,
		GrooveCount:     10,
		GrooveDepth:     0.4,
		WidthProportion: 0.2,
		Cutoff:          4,
	}
	diff(t, want, DefaultSettings())
	if !DefaultSettings().Truncated() {
		t.Error("default gear should be truncated")
	}
}

func TestCorners(t *testing.T) {
	s := DefaultSettings()
	start, corners := s.Corners()
	if len(corners) != s.GrooveCount {
		t.Fatalf("got %d corner pairs, want %d", len(corners), s.GrooveCount)
	}
	onCircle := func(pt Point) {
		t.Helper()
		if d := pt.Distance(s.Center); math.Abs(d-s.Radius) > 1e-9 {
			t.Errorf("%s is %v away from the center, want %v", pt, d, s.Radius)
		}
	}
	onCircle(start)
	for _, c := range corners {
		onCircle(c[0])
		onCircle(c[1])
	}

	// spike 18°·0.8, groove 18°·1.2
	base := s.Center.Translate(Vec(0, -s.Radius))
	assertNear(t, start, base.Rotate(21.6/2+216, s.Center), 1e-9)
	assertNear(t, corners[0][0], base.Rotate(21.6/2+14.4+216, s.Center), 1e-9)
	assertNear(t, corners[0][1], base.Rotate(21.6/2+14.4+21.6+216, s.Center), 1e-9)
	// The last groove ends where the outline starts.
	assertNear(t, corners[len(corners)-1][1], start, 1e-9)
}

func TestCornersGrooveCounts(t *testing.T) {
	for n := 1; n <= 64; n++ {
		for _, wp := range []float64{-0.5, 0, 0.2, 0.9} {
			s := DefaultSettings()
			s.GrooveCount = n
			s.WidthProportion = wp
			if _, corners := s.Corners(); len(corners) != n {
				t.Errorf("%d grooves, width proportion %v: got %d corner pairs", n, wp, len(corners))
			}
		}
	}
}

func TestGrooveCurve(t *testing.T) {
	s := testSettings(10)
	p1, p2 := Pt(10, -5), Pt(10, 5)

	q := s.grooveCurve(p1, p2)
	diff(t, QuadBez{p1, Pt(5, 0), p2}, q)

	s.GrooveDepth = 0
	diff(t, Pt(10, 0), s.grooveCurve(p1, p2).P1)
	s.GrooveDepth = 1
	diff(t, Pt(0, 0), s.grooveCurve(p1, p2).P1)
}

func TestGenerateFull(t *testing.T) {
	s := testSettings(10)
	p := Generate(s, "red", "blue")

	want := []PathElementKind{
		MoveToKind,
		ArcToKind, QuadToKind,
		ArcToKind, QuadToKind,
		ArcToKind, QuadToKind,
		ArcToKind, QuadToKind,
		ClosePathKind,
		MoveToKind, ArcToKind, ArcToKind, ClosePathKind,
	}
	diff(t, want, kinds(p))
	diff(t, "red", p.Fill)
	diff(t, "blue", p.Stroke)
	if n := p.Subpaths(); n != 2 {
		t.Errorf("got %d subpaths, want 2", n)
	}

	assertNear(t, p.Elements[0].P0, Pt(0, -10).Rotate(45.0/2, Pt(0, 0)), 1e-12)

	// Eight corner points, all on the outer circle.
	var corners []Point
	for _, el := range p.Elements[1:9] {
		end, _ := el.EndPoint()
		corners = append(corners, end)
	}
	for _, c := range corners {
		if d := c.Distance(s.Center); math.Abs(d-s.Radius) > 1e-9 {
			t.Errorf("corner %s is not on the outer circle", c)
		}
	}
	// The outline is closed geometrically, not only by ClosePath.
	assertNear(t, corners[len(corners)-1], p.Elements[0].P0, 1e-9)

	for _, el := range p.Elements[1:9] {
		if el.Kind == ArcToKind {
			diff(t, PathElement{Kind: ArcToKind, P0: el.P0, Radii: Vec(10, 10), Sweep: true}, el)
		}
	}

	bore := p.Elements[len(p.Elements)-4:]
	diff(t, []PathElement{
		MoveTo(Pt(0, -5)),
		ArcTo(Vec(1, 1), 0, false, false, Pt(0, 5)),
		ArcTo(Vec(1, 1), 0, false, false, Pt(0, -5)),
		ClosePath(),
	}, bore)
}

func TestGenerateFullElementCount(t *testing.T) {
	for n := 1; n <= 32; n++ {
		s := DefaultSettings()
		s.GrooveCount = n
		s.Cutoff = n
		p := Generate(s, "", "")
		// MoveTo, a spike and a groove per tooth, ClosePath and the four
		// elements of the bore.
		if got, want := p.Len(), 2*n+6; got != want {
			t.Errorf("%d grooves: got %d elements, want %d", n, got, want)
		}
	}
}

func TestGenerateCutoffInvariant(t *testing.T) {
	want := Generate(testSettings(4), "a", "b")
	for _, cutoff := range []int{5, 10, 1000} {
		diff(t, want, Generate(testSettings(cutoff), "a", "b"))
	}
}

func TestGenerateTruncated(t *testing.T) {
	s := testSettings(2)
	if !s.Truncated() {
		t.Fatal("expected settings to be truncated")
	}
	p := Generate(s, "none", "black")

	want := []PathElementKind{
		MoveToKind,
		ArcToKind, QuadToKind,
		ArcToKind, CubicToKind,
		LineToKind, ArcToKind, LineToKind, CubicToKind, ClosePathKind,
	}
	diff(t, want, kinds(p))
	if n := p.Subpaths(); n != 1 {
		t.Errorf("got %d subpaths, want 1", n)
	}

	_, corners := s.Corners()

	// The second groove is cut in half.
	half := p.Elements[4]
	assertNear(t, half.P2, s.grooveCurve(corners[1][0], corners[1][1]).Eval(0.5), 1e-12)

	// Cutoff angle is 180°: across the bore from (0, 5) back to (0, -5).
	assertNear(t, p.Elements[5].P0, Pt(0, 5), 1e-12)
	arc := p.Elements[6]
	diff(t, ArcTo(Vec(5, 5), 0, false, false, Pt(0, -5)), arc, approx)

	// Back out to the middle of the last groove and along its second half
	// to the start of the outline.
	last := s.grooveCurve(corners[3][0], corners[3][1])
	assertNear(t, p.Elements[7].P0, last.Eval(0.5), 1e-12)
	_, second := last.Raise().Subdivide()
	diff(t, second.CubicTo(), p.Elements[8])
	assertNear(t, p.Elements[8].P2, p.Elements[0].P0, 1e-9)
}

func TestGenerateTruncatedLargeArc(t *testing.T) {
	for cutoff, large := range map[int]bool{1: false, 2: false, 3: true} {
		p := Generate(testSettings(cutoff), "", "")
		arc := p.Elements[len(p.Elements)-4]
		if arc.Kind != ArcToKind {
			t.Fatalf("cutoff %d: got %s, want an arc", cutoff, arc.Kind)
		}
		if arc.LargeArc != large {
			t.Errorf("cutoff %d: got large arc flag %t, want %t", cutoff, arc.LargeArc, large)
		}
		if arc.Sweep {
			t.Errorf("cutoff %d: bore arc must sweep counterclockwise", cutoff)
		}
	}
}

func TestGenerateCutoffOne(t *testing.T) {
	p := Generate(testSettings(1), "", "")
	want := []PathElementKind{
		MoveToKind,
		ArcToKind, CubicToKind,
		LineToKind, ArcToKind, LineToKind, CubicToKind, ClosePathKind,
	}
	diff(t, want, kinds(p))
}

func TestGenerateCutoffZero(t *testing.T) {
	// The cutoff is compared against 1-based groove indices, so a cutoff of
	// 0 never triggers and the full gear is drawn.
	s := testSettings(0)
	if s.Truncated() {
		t.Error("cutoff 0 reported as truncated")
	}
	diff(t, Generate(testSettings(4), "", ""), Generate(s, "", ""))
	diff(t, Generate(testSettings(4), "", ""), Generate(testSettings(-3), "", ""))
}

func TestGenerateRotationCutoff(t *testing.T) {
	s := DefaultSettings()
	p := Generate(s, "", "")
	// The bore arc ends at the top of the bore, rotated with the gear.
	arc := p.Elements[len(p.Elements)-4]
	want := Pt(100, 55).Rotate(216, Pt(100, 100))
	assertNear(t, arc.P0, want, 1e-9)
	// 4 · 36° = 144°, less than half a turn.
	if arc.LargeArc {
		t.Error("got large arc for a 144° cutoff")
	}
	assertNear(t, p.Elements[len(p.Elements)-5].P0, want.Rotate(144, Pt(100, 100)), 1e-9)
}

func TestGenerateZeroGrooves(t *testing.T) {
	s := DefaultSettings()
	s.GrooveCount = 0
	p := Generate(s, "", "")
	want := []PathElementKind{
		MoveToKind, ClosePathKind,
		MoveToKind, ArcToKind, ArcToKind, ClosePathKind,
	}
	diff(t, want, kinds(p))
	if !p.IsNaN() {
		t.Error("expected degenerate coordinates for zero grooves")
	}
}

func TestGenerateNegativeGrooves(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative groove count")
		}
	}()
	s := DefaultSettings()
	s.GrooveCount = -1
	Generate(s, "", "")
}

func TestGenerateSVG(t *testing.T) {
	const fill = "#ff8800"
	const stroke = "rgb(10, 20, 30)"
	for _, s := range []Settings{DefaultSettings(), testSettings(10), testSettings(3)} {
		out := GenerateSVG(s, fill, stroke, 3)

		if !strings.HasPrefix(out, `<path d="M `) {
			t.Errorf("unexpected start of element: %s", out)
		}
		if strings.Count(out, "<") != 1 {
			t.Errorf("expected a single element: %s", out)
		}
		if !strings.Contains(out, `Z" fill=`) {
			t.Errorf("path data doesn't end in Z: %s", out)
		}

		dec := xml.NewDecoder(strings.NewReader(out))
		tok, err := dec.Token()
		if err != nil {
			t.Fatal(err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok || el.Name.Local != "path" {
			t.Fatalf("got token %#v, want a path element", tok)
		}
		attrs := map[string]string{}
		for _, attr := range el.Attr {
			attrs[attr.Name.Local] = attr.Value
		}
		diff(t, fill, attrs["fill"])
		diff(t, stroke, attrs["stroke"])
		diff(t, Generate(s, "", "").Data(SVGOptions{Precision: 3}), attrs["d"])

		for _, field := range strings.Fields(attrs["d"]) {
			i := strings.IndexByte(field, '.')
			if i == -1 {
				continue
			}
			if strings.HasSuffix(field, "0") || strings.HasSuffix(field, ".") {
				t.Errorf("number %q has trailing zeros", field)
			}
			if len(field)-i-1 > 3 {
				t.Errorf("number %q exceeds precision", field)
			}
		}
	}
}

func TestGenerateSVGHugePrecision(t *testing.T) {
	s := DefaultSettings()
	exact := Generate(s, "a", "b").SVG(SVGOptions{Precision: 2000})
	for _, prec := range []uint{MaxPrecision, MaxPrecision + 1, math.MaxInt, math.MaxInt + 1, math.MaxUint} {
		if got := GenerateSVG(s, "a", "b", prec); got != exact {
			t.Errorf("precision %d: got %s, want %s", prec, got, exact)
		}
	}
	if exact == Generate(s, "a", "b").SVG(ShortestSVG) {
		t.Error("exact output shouldn't match the shortest representation")
	}
}

func TestGenerateLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	Generate(DefaultSettings(), "", "")
	out := buf.String()
	for _, s := range []string{"generated gear", "grooves=10", "corners=10", "truncated=true", "elements=14"} {
		if !strings.Contains(out, s) {
			t.Errorf("log output %q doesn't contain %q", out, s)
		}
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("got nil logger")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
