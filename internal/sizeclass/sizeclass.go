// Package sizeclass computes the capacity classes used to index recycled
// node buffers. Classing keeps free-list lookup O(log classes) while
// bounding internal fragmentation.
package sizeclass

import "math"

// Config defines the capacity class strategy, in elements.
type Config struct {
	// Name for this configuration (for benchmarking).
	Name string

	// Small capacity settings (linear increments).
	SmallMin       int // Minimum capacity (typically 8)
	SmallMax       int // Max for linear increments
	SmallIncrement int // Increment for small capacities

	// Medium/large capacity settings (logarithmic growth).
	MediumMax    int     // Max before the large class
	GrowthFactor float64 // Exponential growth factor
}

// Predefined configurations.
var (
	// Balanced: good trade between class count and fragmentation.
	// 8-64 step 8 (7 classes) + 64-4096 log growth (~10 classes).
	ConfigBalanced = Config{
		Name:           "Balanced",
		SmallMin:       8,
		SmallMax:       64,
		SmallIncrement: 8,
		MediumMax:      4096,
		GrowthFactor:   1.5,
	}

	// Default configuration (used if none specified).
	DefaultConfig = ConfigBalanced
)

// Table holds the computed class boundaries.
type Table struct {
	config     Config
	boundaries []int // Upper bound for each class
	numClasses int
}

// New computes class boundaries from config.
func New(config Config) *Table {
	t := &Table{
		config:     config,
		boundaries: make([]int, 0, 32),
	}

	// Phase 1: small capacities (linear increments)
	for size := config.SmallMin; size < config.SmallMax; size += config.SmallIncrement {
		t.boundaries = append(t.boundaries, size+config.SmallIncrement-1)
	}

	// Phase 2: medium/large capacities (logarithmic growth)
	if config.SmallMax < config.MediumMax {
		size := config.SmallMax
		for size < config.MediumMax {
			next := int(math.Ceil(float64(size) * config.GrowthFactor))
			if next <= size {
				next = size + 1 // Ensure progress
			}
			t.boundaries = append(t.boundaries, next-1)
			size = next
		}
	}

	t.numClasses = len(t.boundaries)
	return t
}

// ClassFor returns the class index for a given capacity. Returns
// NumClasses() for capacities >= MediumMax (the large class).
func (t *Table) ClassFor(capacity int) int {
	lo, hi := 0, t.numClasses-1

	for lo <= hi {
		mid := (lo + hi) / 2
		if capacity <= t.boundaries[mid] {
			if mid == 0 || capacity > t.boundaries[mid-1] {
				return mid
			}
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	// Larger than all boundaries: the large class.
	return t.numClasses
}

// NumClasses returns the number of sized classes (excluding the large
// class).
func (t *Table) NumClasses() int {
	return t.numClasses
}

// String returns the configuration name.
func (t *Table) String() string {
	return t.config.Name
}
