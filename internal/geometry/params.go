// internal/geometry/params.go
package geometry

import (
	"sync/atomic"

	"go-modular-circle/internal/config"
)

// Snapshot is a consistent copy of the parameters taken when a job starts.
type Snapshot struct {
	Points     int
	Multiplier int
}

// Params holds the two user-controlled values. They are written by the UI
// goroutine and read by worker goroutines.
type Params struct {
	points     atomic.Int32
	multiplier atomic.Int32
}

// NewParams creates a parameter set, clamping both values into range.
func NewParams(points, multiplier int) *Params {
	p := &Params{}
	p.SetPoints(points)
	p.SetMultiplier(multiplier)
	return p
}

func (p *Params) Points() int     { return int(p.points.Load()) }
func (p *Params) Multiplier() int { return int(p.multiplier.Load()) }

func (p *Params) SetPoints(v int) {
	p.points.Store(int32(Clamp(v, config.PointsMin, config.PointsMax)))
}

func (p *Params) SetMultiplier(v int) {
	p.multiplier.Store(int32(Clamp(v, config.MultiplierMin, config.MultiplierMax)))
}

func (p *Params) Snapshot() Snapshot {
	return Snapshot{Points: p.Points(), Multiplier: p.Multiplier()}
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
