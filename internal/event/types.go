// internal/event/types.go
package event

const (
	ParameterChanged EventType = "ParameterChanged" // Data: ParameterChange
	RedrawRequested  EventType = "RedrawRequested"
	ExportRequested  EventType = "ExportRequested"
)

// Parameter names one of the two user-controlled values.
type Parameter string

const (
	Multiplier Parameter = "multiplier"
	Points     Parameter = "points"
)

// ParameterChange is the payload of ParameterChanged.
type ParameterChange struct {
	Parameter Parameter
	Value     int
}
