package z2d

// AntiAliasMode selects the coverage sampling strategy for fills.
type AntiAliasMode int

const (
	// AntiAliasDefault requests supersampled coverage.
	AntiAliasDefault AntiAliasMode = iota
	// AntiAliasNone samples only the pixel center.
	AntiAliasNone
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapSquare specifies a square line cap extended by half the width.
	LineCapSquare
	// LineCapRound specifies a rounded line cap.
	LineCapRound
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// ContextOption configures a Context during creation.
type ContextOption func(*Context)

// WithPattern sets the source pattern.
func WithPattern(p Pattern) ContextOption {
	return func(dc *Context) {
		dc.pattern = p
	}
}

// WithAntiAlias sets the antialiasing mode.
func WithAntiAlias(mode AntiAliasMode) ContextOption {
	return func(dc *Context) {
		dc.antiAlias = mode
	}
}

// WithFillRule sets the fill rule used by Fill.
func WithFillRule(rule FillRule) ContextOption {
	return func(dc *Context) {
		dc.fillRule = rule
	}
}

// WithStroke sets the stroke style used by Stroke.
func WithStroke(s Stroke) ContextOption {
	return func(dc *Context) {
		dc.stroke = s.Clone()
	}
}
