package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/corelab/internal/vector"
)

// MaxPushes bounds a trace so its samples stay in memory.
const MaxPushes = 1 << 20

var ErrPushes = fmt.Errorf("viz: pushes must be between 0 and %d", MaxPushes)

// GrowthSample is the state of a container after one operation.
type GrowthSample struct {
	Op       string
	Size     int
	Capacity int
}

// GrowthTrace pushes pushes values onto a fresh IntVector and pops them all
// again, recording size and capacity after every step.
func GrowthTrace(initialCapacity, pushes int) ([]GrowthSample, error) {
	if pushes < 0 || pushes > MaxPushes {
		return nil, fmt.Errorf("%w, got %d", ErrPushes, pushes)
	}
	v, err := vector.NewInt(initialCapacity)
	if err != nil {
		return nil, err
	}
	defer v.Destroy()

	samples := make([]GrowthSample, 0, 2*pushes+1)
	samples = append(samples, GrowthSample{Op: "new", Size: v.Size(), Capacity: v.Capacity()})

	for i := 0; i < pushes; i++ {
		if err := v.Push(int32(i)); err != nil {
			return samples, fmt.Errorf("push %d: %w", i, err)
		}
		samples = append(samples, GrowthSample{Op: "push", Size: v.Size(), Capacity: v.Capacity()})
	}
	for v.Size() > 0 {
		if _, err := v.Pop(); err != nil {
			return samples, fmt.Errorf("pop at size %d: %w", v.Size(), err)
		}
		samples = append(samples, GrowthSample{Op: "pop", Size: v.Size(), Capacity: v.Capacity()})
	}
	return samples, nil
}

// Resizes counts the samples whose capacity differs from the previous one.
func Resizes(samples []GrowthSample) (grows, shrinks int) {
	for i := 1; i < len(samples); i++ {
		switch {
		case samples[i].Capacity > samples[i-1].Capacity:
			grows++
		case samples[i].Capacity < samples[i-1].Capacity:
			shrinks++
		}
	}
	return grows, shrinks
}

// PlotGrowth draws size and capacity over the trace as two series.
func PlotGrowth(samples []GrowthSample, width, height int) string {
	if len(samples) == 0 {
		return ""
	}
	sizes := make([]float64, len(samples))
	caps := make([]float64, len(samples))
	for i, s := range samples {
		sizes[i] = float64(s.Size)
		caps[i] = float64(s.Capacity)
	}

	return asciigraph.PlotMany([][]float64{caps, sizes},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Green),
		asciigraph.Caption("capacity (cyan) and size (green) per operation"),
	)
}
