package iir

// Coefficients holds the transfer function coefficients of a recursive
// filter. A is the feedback (denominator) vector applied to past outputs,
// B the feedforward (numerator) vector applied to current and past inputs.
// Both must have order+1 elements; A[0] normalizes the output and must be
// nonzero (conventionally 1).
//
// Coefficients values are treated as immutable: [Filter.Configure] copies
// the vectors, so one value can safely configure many filter instances.
type Coefficients struct {
	A []float64 // feedback (denominator)
	B []float64 // feedforward (numerator)
}

// Order returns the filter order implied by the feedback vector.
func (c Coefficients) Order() int {
	return len(c.A) - 1
}

// Validate checks the length and leading-coefficient invariants against
// the given order.
func (c Coefficients) Validate(order int) error {
	if err := validateLengths(order, len(c.A), len(c.B)); err != nil {
		return err
	}
	if c.A[0] == 0 {
		return ErrZeroLeadingCoefficient
	}
	return nil
}

// Filter is a direct-form I recursive filter with a fixed order. It owns
// its input and output history; instances are cheap to construct and are
// not safe for concurrent use.
type Filter struct {
	order int
	a, b  []float64

	// Shift-register history, most recent first. Both slices always have
	// exactly order elements; their length is derived from the configured
	// order and never changes after construction.
	x []float64
	y []float64
}

// New returns a Filter of the given order configured as an identity
// pass-through (a = [1, 0, ...], b = [1, 0, ...]) with zero history.
//
// Panics if order <= 0.
func New(order int) *Filter {
	if order <= 0 {
		panic("iir: filter order must be positive")
	}

	f := &Filter{
		order: order,
		a:     make([]float64, order+1),
		b:     make([]float64, order+1),
		x:     make([]float64, order),
		y:     make([]float64, order),
	}
	f.a[0] = 1
	f.b[0] = 1

	return f
}

// NewWithCoefficients returns a Filter whose order is derived from the
// coefficient vectors, validated and configured in one step.
func NewWithCoefficients(c Coefficients) (*Filter, error) {
	order := c.Order()
	if order <= 0 {
		return nil, validateLengths(1, len(c.A), len(c.B))
	}

	f := New(order)
	if err := f.Configure(c); err != nil {
		return nil, err
	}

	return f, nil
}

// Configure installs a coefficient set. Both vectors must have exactly
// order+1 elements and A[0] must be nonzero; the vectors are copied.
// The history is left untouched, so coefficients can be swapped on a
// running stream without a discontinuity from cleared state.
func (f *Filter) Configure(c Coefficients) error {
	if err := c.Validate(f.order); err != nil {
		return err
	}

	copy(f.a, c.A)
	copy(f.b, c.B)

	return nil
}

// ProcessSample filters one input sample and returns the output.
//
//	y[n] = (b·[x[n] .. x[n-N]] - a[1..]·[y[n-1] .. y[n-N]]) / a[0]
//
// The sample and the output are then shifted into the histories, evicting
// the oldest entry of each.
func (f *Filter) ProcessSample(x float64) float64 {
	acc := f.b[0] * x
	for k := 1; k <= f.order; k++ {
		acc += f.b[k]*f.x[k-1] - f.a[k]*f.y[k-1]
	}
	acc /= f.a[0]

	copy(f.x[1:], f.x)
	f.x[0] = x
	copy(f.y[1:], f.y)
	f.y[0] = acc

	return acc
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset zeroes both histories. Coefficients are untouched; subsequent
// ProcessSample calls behave as if starting a fresh stream.
func (f *Filter) Reset() {
	for i := range f.x {
		f.x[i] = 0
	}
	for i := range f.y {
		f.y[i] = 0
	}
}

// Order returns the filter order.
func (f *Filter) Order() int {
	return f.order
}

// Coefficients returns a copy of the installed coefficient set.
func (f *Filter) Coefficients() Coefficients {
	a := make([]float64, len(f.a))
	b := make([]float64, len(f.b))
	copy(a, f.a)
	copy(b, f.b)

	return Coefficients{A: a, B: b}
}

// State is a snapshot of a filter's history, most recent sample first.
type State struct {
	Input  []float64
	Output []float64
}

// State returns a copy of the current history.
func (f *Filter) State() State {
	s := State{
		Input:  make([]float64, f.order),
		Output: make([]float64, f.order),
	}
	copy(s.Input, f.x)
	copy(s.Output, f.y)

	return s
}

// SetState restores a previously saved history. Slices longer than the
// filter order are truncated; shorter ones leave the tail untouched.
func (f *Filter) SetState(s State) {
	copy(f.x, s.Input)
	copy(f.y, s.Output)
}
