package policy

// Unit is the canonical empty member. It reserves a composition slot
// without occupying storage in interior positions.
type Unit struct{}

// Pair combines two independent policy members into one aggregate.
// Members are laid out in reverse of the type-parameter order: B first,
// A last. Compose with non-empty members first so empty ones stay
// interior and storage-free.
type Pair[A, B any] struct {
	second B
	first  A
}

// MakePair builds a Pair from its members.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{first: a, second: b}
}

// First returns the first composed member.
func (p *Pair[A, B]) First() *A { return &p.first }

// Second returns the second composed member.
func (p *Pair[A, B]) Second() *B { return &p.second }

// Triple combines three independent policy members into one aggregate,
// laid out in reverse of the type-parameter order.
type Triple[A, B, C any] struct {
	third  C
	second B
	first  A
}

// MakeTriple builds a Triple from its members.
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{first: a, second: b, third: c}
}

// First returns the first composed member.
func (t *Triple[A, B, C]) First() *A { return &t.first }

// Second returns the second composed member.
func (t *Triple[A, B, C]) Second() *B { return &t.second }

// Third returns the third composed member.
func (t *Triple[A, B, C]) Third() *C { return &t.third }
