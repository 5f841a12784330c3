package vecbool

import (
	"fmt"
	"strconv"
	"strings"

	tdstrconv "github.com/tdewolff/strconv"
)

// formatNumber renders a coordinate the way tdewolff/strconv's AppendFloat
// does for canvas's own SVG output: shortest round-tripping representation,
// no trailing zeros.
func formatNumber(v float64) string {
	b, _ := tdstrconv.AppendFloat(nil, v, -1)
	return string(b)
}

func appendPoint(b *strings.Builder, p Point) {
	b.WriteString(formatNumber(p.X))
	b.WriteByte(' ')
	b.WriteString(formatNumber(p.Y))
}

// ToSVGPath renders the path as SVG path data, using a minimal command set
// with single-space separation: M, L, C, Z.
func (p *Path) ToSVGPath() string {
	var b strings.Builder
	for i, e := range p.Elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e.Kind {
		case MoveTo:
			b.WriteString("M ")
			appendPoint(&b, e.Points[0])
		case LineTo:
			b.WriteString("L ")
			appendPoint(&b, e.Points[0])
		case CurveTo:
			b.WriteString("C ")
			appendPoint(&b, e.Points[0])
			b.WriteByte(' ')
			appendPoint(&b, e.Points[1])
			b.WriteByte(' ')
			appendPoint(&b, e.Points[2])
		case Close:
			b.WriteString("Z")
		}
	}
	return b.String()
}

// ToSVG wraps the path's SVG path data in a minimal standalone SVG
// document, with viewBox set to the path's bounds.
func (p *Path) ToSVG() string {
	r := p.Bounds()
	minX, minY, w, h := 0.0, 0.0, 0.0, 0.0
	if !r.IsEmpty() {
		minX, minY = r.Min.X, r.Min.Y
		w, h = r.Width(), r.Height()
	}
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="`)
	b.WriteString(formatNumber(minX))
	b.WriteByte(' ')
	b.WriteString(formatNumber(minY))
	b.WriteByte(' ')
	b.WriteString(formatNumber(w))
	b.WriteByte(' ')
	b.WriteString(formatNumber(h))
	b.WriteString(`"><path d="`)
	b.WriteString(p.ToSVGPath())
	b.WriteString(`"/></svg>`)
	return b.String()
}

// ParsePath parses the restricted SVG path-data grammar ToSVGPath emits:
// single-space separated commands M, L, C and Z, absolute coordinates only.
// It is deliberately not a general SVG path parser (no relative commands, no
// implicit repetition, no arcs or quadratics) since that's all ToSVGPath
// ever produces.
func ParsePath(data string) (*Path, error) {
	fields := strings.Fields(data)
	p := NewPath()
	i := 0
	next := func() (Point, error) {
		if i+1 >= len(fields) {
			return Point{}, fmt.Errorf("vecbool: truncated coordinate pair at field %d", i)
		}
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Point{}, fmt.Errorf("vecbool: bad number %q: %w", fields[i], err)
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Point{}, fmt.Errorf("vecbool: bad number %q: %w", fields[i+1], err)
		}
		i += 2
		return Point{x, y}, nil
	}
	for i < len(fields) {
		cmd := fields[i]
		i++
		switch cmd {
		case "M":
			pt, err := next()
			if err != nil {
				return nil, err
			}
			p.Move(pt)
		case "L":
			pt, err := next()
			if err != nil {
				return nil, err
			}
			p.Line(pt)
		case "C":
			c1, err := next()
			if err != nil {
				return nil, err
			}
			c2, err := next()
			if err != nil {
				return nil, err
			}
			pt, err := next()
			if err != nil {
				return nil, err
			}
			p.Curve(c1, c2, pt)
		case "Z":
			p.CloseSubpath()
		default:
			return nil, fmt.Errorf("vecbool: unrecognized path command %q", cmd)
		}
	}
	return p, nil
}
