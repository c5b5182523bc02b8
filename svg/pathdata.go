package svg

import (
	"fmt"
	"strconv"

	"github.com/qwerasd205/z2d"
)

// ParsePathData parses an SVG path data string (the d attribute) into a
// z2d path. Supported commands are M/m, L/l, H/h, V/v, Q/q, C/c, and
// Z/z; repeated coordinate pairs after a moveto are treated as implicit
// linetos per the SVG grammar.
//
// On a malformed command the path built so far is returned along with
// the error, so a document-level caller can record a warning and keep
// the partial geometry.
func ParsePathData(data string) (*z2d.Path, error) {
	s := &pathScanner{input: data}
	p := z2d.NewPath()

	var cmd byte
	var cx, cy float64 // current point, tracked for relative commands
	started := false

	for {
		s.skipSeparators()
		if s.done() {
			return p, nil
		}

		if c := s.peek(); isCommand(c) {
			cmd = c
			s.next()
		} else if cmd == 0 {
			return p, fmt.Errorf("path data must begin with a command, got %q", c)
		} else {
			// Repeated coordinates reuse the previous command; an
			// initial moveto continues as lineto.
			switch cmd {
			case 'M':
				cmd = 'L'
			case 'm':
				cmd = 'l'
			}
		}

		if !started && cmd != 'M' && cmd != 'm' {
			return p, fmt.Errorf("command %q before initial moveto", cmd)
		}

		switch cmd {
		case 'M', 'm':
			x, y, err := s.coordPair()
			if err != nil {
				return p, err
			}
			if cmd == 'm' && started {
				x, y = cx+x, cy+y
			}
			p.MoveTo(x, y)
			cx, cy = x, y
			started = true
		case 'L', 'l':
			x, y, err := s.coordPair()
			if err != nil {
				return p, err
			}
			if cmd == 'l' {
				x, y = cx+x, cy+y
			}
			p.LineTo(x, y)
			cx, cy = x, y
		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return p, err
			}
			if cmd == 'h' {
				x = cx + x
			}
			p.LineTo(x, cy)
			cx = x
		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return p, err
			}
			if cmd == 'v' {
				y = cy + y
			}
			p.LineTo(cx, y)
			cy = y
		case 'Q', 'q':
			x1, y1, err := s.coordPair()
			if err != nil {
				return p, err
			}
			x, y, err := s.coordPair()
			if err != nil {
				return p, err
			}
			if cmd == 'q' {
				x1, y1 = cx+x1, cy+y1
				x, y = cx+x, cy+y
			}
			p.QuadTo(x1, y1, x, y)
			cx, cy = x, y
		case 'C', 'c':
			x1, y1, err := s.coordPair()
			if err != nil {
				return p, err
			}
			x2, y2, err := s.coordPair()
			if err != nil {
				return p, err
			}
			x, y, err := s.coordPair()
			if err != nil {
				return p, err
			}
			if cmd == 'c' {
				x1, y1 = cx+x1, cy+y1
				x2, y2 = cx+x2, cy+y2
				x, y = cx+x, cy+y
			}
			p.CurveTo(x1, y1, x2, y2, x, y)
			cx, cy = x, y
		case 'Z', 'z':
			p.Close()
			cp := p.CurrentPoint()
			cx, cy = cp.X, cp.Y
		default:
			return p, fmt.Errorf("unsupported path command %q", cmd)
		}
	}
}

func isCommand(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// pathScanner tokenizes SVG path data: commands, numbers, and the
// whitespace/comma separators between them.
type pathScanner struct {
	input string
	pos   int
}

func (s *pathScanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *pathScanner) peek() byte {
	return s.input[s.pos]
}

func (s *pathScanner) next() byte {
	c := s.input[s.pos]
	s.pos++
	return c
}

func (s *pathScanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', '\t', '\n', '\r', ',':
			s.pos++
		default:
			return
		}
	}
}

// number scans one signed decimal number, with optional exponent.
func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos

	if !s.done() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits := false
	for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
		digits = true
	}
	if !s.done() && s.peek() == '.' {
		s.pos++
		for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			digits = true
		}
	}
	if digits && !s.done() && (s.peek() == 'e' || s.peek() == 'E') {
		mark := s.pos
		s.pos++
		if !s.done() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := false
		for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
			s.pos++
			expDigits = true
		}
		if !expDigits {
			s.pos = mark
		}
	}

	if !digits {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	return strconv.ParseFloat(s.input[start:s.pos], 64)
}

func (s *pathScanner) coordPair() (x, y float64, err error) {
	x, err = s.number()
	if err != nil {
		return
	}
	y, err = s.number()
	return
}
