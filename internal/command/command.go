// internal/command/command.go
package command

import "fmt"

// Kind identifies what a Command asks the surface to do.
type Kind uint8

const (
	Clear Kind = iota
	CreateCircleOutline
	CreateLine
	Refresh
)

func (k Kind) String() string {
	switch k {
	case Clear:
		return "Clear"
	case CreateCircleOutline:
		return "CreateCircleOutline"
	case CreateLine:
		return "CreateLine"
	case Refresh:
		return "Refresh"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Line holds chord endpoints. Index and Total describe the chord's position
// in its batch and are used for colouring only.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Index  int
	Total  int
}

// Command is one drawing instruction passed from the geometry worker to the
// render loop. Generation ties it to the redraw request that produced it.
type Command struct {
	Kind       Kind
	Generation uint64
	Line       Line // only meaningful for CreateLine
}

func NewClear(gen uint64) Command {
	return Command{Kind: Clear, Generation: gen}
}

func NewCircleOutline(gen uint64) Command {
	return Command{Kind: CreateCircleOutline, Generation: gen}
}

func NewLine(gen uint64, l Line) Command {
	return Command{Kind: CreateLine, Generation: gen, Line: l}
}

func NewRefresh(gen uint64) Command {
	return Command{Kind: Refresh, Generation: gen}
}

func (c Command) String() string {
	if c.Kind == CreateLine {
		return fmt.Sprintf("%s#%d(%.2f,%.2f -> %.2f,%.2f)", c.Kind, c.Generation, c.Line.X1, c.Line.Y1, c.Line.X2, c.Line.Y2)
	}
	return fmt.Sprintf("%s#%d", c.Kind, c.Generation)
}
