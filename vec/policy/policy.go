package policy

import "github.com/joshuapare/persistkit/vec/mem"

// Growth controls how node buffer capacity evolves when a transient
// claims a node for appending. Bigger factors trade memory for fewer
// copies ("prefer fewer, bigger objects").
type Growth struct {
	// MinCapacity is the smallest buffer a claim allocates.
	// Default: 8.
	MinCapacity int

	// Num/Den is the geometric growth ratio applied to the previous
	// capacity. Default: 2/1.
	Num int
	Den int
}

// DefaultGrowth is the balanced growth policy: capacity 8 minimum,
// doubling thereafter.
var DefaultGrowth = Growth{MinCapacity: 8, Num: 2, Den: 1}

// Next returns the capacity for a claim that must hold at least need
// elements, given the previous capacity.
func (g Growth) Next(prev, need int) int {
	next := g.MinCapacity
	if next < 1 {
		next = 1
	}
	if prev > 0 {
		num, den := g.Num, g.Den
		if num <= 0 || den <= 0 || num <= den {
			num, den = 2, 1
		}
		next = prev * num / den
		if next <= prev {
			next = prev + 1
		}
	}
	if next < need {
		next = need
	}
	return next
}

// Full is the concrete policy bundle containers consume: the memory
// policy and the growth policy composed into one value. Containers
// normalize bundles with OrDefault before use, so the zero Full simply
// means "defaults".
type Full struct {
	agg Triple[mem.Policy, Growth, Unit]
}

// New composes a bundle from a memory policy and a growth policy.
func New(m mem.Policy, g Growth) Full {
	return Full{agg: MakeTriple(m, g, Unit{})}
}

// Default returns the collector-backed bundle with balanced growth.
func Default() Full {
	return New(mem.NewGC(), DefaultGrowth)
}

// Mem returns the bundle's memory policy; nil for the zero bundle.
func (f Full) Mem() mem.Policy {
	return *f.agg.First()
}

// Growth returns the bundle's growth policy.
func (f Full) Growth() Growth {
	return *f.agg.Second()
}

// OrDefault fills any unset member with its default and returns the
// completed bundle.
func (f Full) OrDefault() Full {
	m := f.Mem()
	if m == nil {
		m = mem.NewGC()
	}
	g := f.Growth()
	if g.MinCapacity == 0 && g.Num == 0 && g.Den == 0 {
		g = DefaultGrowth
	}
	return New(m, g)
}
