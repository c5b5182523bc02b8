package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwerasd205/z2d"
)

func TestParsePathData(t *testing.T) {
	p, err := ParsePathData("M 10,10 L 20,10 C 25,10 30,15 30,20 Z")
	require.NoError(t, err)

	nodes := p.Nodes()
	// MoveTo, LineTo, CurveTo, ClosePath, implicit MoveTo.
	require.Len(t, nodes, 5)
	assert.Equal(t, z2d.MoveTo{Point: z2d.Pt(10, 10)}, nodes[0])
	assert.Equal(t, z2d.LineTo{Point: z2d.Pt(20, 10)}, nodes[1])
	assert.Equal(t, z2d.CurveTo{
		Control1: z2d.Pt(25, 10),
		Control2: z2d.Pt(30, 15),
		Point:    z2d.Pt(30, 20),
	}, nodes[2])
	assert.IsType(t, z2d.ClosePath{}, nodes[3])
}

func TestParsePathData_RelativeCommands(t *testing.T) {
	p, err := ParsePathData("m 10,10 l 5,0 v 5 h -5 z")
	require.NoError(t, err)

	nodes := p.Nodes()
	require.GreaterOrEqual(t, len(nodes), 5)
	assert.Equal(t, z2d.MoveTo{Point: z2d.Pt(10, 10)}, nodes[0])
	assert.Equal(t, z2d.LineTo{Point: z2d.Pt(15, 10)}, nodes[1])
	assert.Equal(t, z2d.LineTo{Point: z2d.Pt(15, 15)}, nodes[2])
	assert.Equal(t, z2d.LineTo{Point: z2d.Pt(10, 15)}, nodes[3])
	assert.IsType(t, z2d.ClosePath{}, nodes[4])
}

func TestParsePathData_Quadratic(t *testing.T) {
	p, err := ParsePathData("M 0,0 Q 5,10 10,0 q 5,-10 10,0")
	require.NoError(t, err)

	nodes := p.Nodes()
	require.Len(t, nodes, 3)
	assert.Equal(t, z2d.QuadTo{
		Control: z2d.Pt(5, 10),
		Point:   z2d.Pt(10, 0),
	}, nodes[1])
	assert.Equal(t, z2d.QuadTo{
		Control: z2d.Pt(15, -10),
		Point:   z2d.Pt(20, 0),
	}, nodes[2])
}

func TestParsePathData_ImplicitLineTo(t *testing.T) {
	p, err := ParsePathData("M 0,0 10,0 10,10")
	require.NoError(t, err)

	nodes := p.Nodes()
	require.Len(t, nodes, 3)
	assert.IsType(t, z2d.MoveTo{}, nodes[0])
	assert.IsType(t, z2d.LineTo{}, nodes[1])
	assert.IsType(t, z2d.LineTo{}, nodes[2])
}

func TestParsePathData_Numbers(t *testing.T) {
	p, err := ParsePathData("M-1.5.5L1e2,2E-1")
	require.NoError(t, err)

	nodes := p.Nodes()
	require.Len(t, nodes, 2)
	assert.Equal(t, z2d.Pt(-1.5, 0.5), nodes[0].(z2d.MoveTo).Point)
	assert.Equal(t, z2d.Pt(100, 0.2), nodes[1].(z2d.LineTo).Point)
}

func TestParsePathData_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"starts without command", "10,10 L 20,20"},
		{"line before moveto", "L 10,10"},
		{"unsupported command", "M 0,0 A 1 1 0 0 0 2,2"},
		{"truncated coordinates", "M 0,0 L 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePathData(tt.data)
			assert.Error(t, err)
			assert.NotNil(t, p, "partial path is still returned")
		})
	}
}

func TestParsePathData_PartialKept(t *testing.T) {
	p, err := ParsePathData("M 0,0 L 10,0 L bad")
	require.Error(t, err)
	assert.Len(t, p.Nodes(), 2, "nodes before the error are kept")
}
