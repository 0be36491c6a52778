package iir

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNew_PanicsOnNonPositiveOrder(t *testing.T) {
	for _, order := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", order)
				}
			}()
			New(order)
		}()
	}
}

func TestNew_IdentityPassthrough(t *testing.T) {
	f := New(3)
	if f.Order() != 3 {
		t.Fatalf("Order: got %d, want 3", f.Order())
	}

	for _, x := range []float64{1, -2, 0.5, 0, 3.25} {
		if y := f.ProcessSample(x); y != x {
			t.Errorf("passthrough: got %v, want %v", y, x)
		}
	}
}

func TestConfigure_LengthValidation(t *testing.T) {
	ones := func(n int) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = 1
		}
		return v
	}

	for _, order := range []int{1, 2, 10} {
		f := New(order)

		cases := []struct {
			name string
			c    Coefficients
		}{
			{"feedback too short", Coefficients{A: ones(order), B: ones(order + 1)}},
			{"feedback too long", Coefficients{A: ones(order + 2), B: ones(order + 1)}},
			{"feedforward too short", Coefficients{A: ones(order + 1), B: ones(order)}},
			{"feedforward too long", Coefficients{A: ones(order + 1), B: ones(order + 2)}},
		}
		for _, tc := range cases {
			err := f.Configure(tc.c)
			if !errors.Is(err, ErrCoefficientLength) {
				t.Errorf("order %d, %s: got %v, want ErrCoefficientLength", order, tc.name, err)
			}
		}

		if err := f.Configure(Coefficients{A: ones(order + 1), B: ones(order + 1)}); err != nil {
			t.Errorf("order %d, valid lengths: unexpected error %v", order, err)
		}
	}
}

func TestConfigure_ZeroLeadingCoefficient(t *testing.T) {
	f := New(1)
	err := f.Configure(Coefficients{A: []float64{0, 0.5}, B: []float64{1, 0}})
	if !errors.Is(err, ErrZeroLeadingCoefficient) {
		t.Fatalf("got %v, want ErrZeroLeadingCoefficient", err)
	}
}

func TestConfigure_DoesNotResetHistory(t *testing.T) {
	f := New(1)
	f.ProcessSample(1)

	if err := f.Configure(Coefficients{A: []float64{1, 0}, B: []float64{0, 1}}); err != nil {
		t.Fatal(err)
	}

	// b = [0, 1] outputs the previous input, which must have survived.
	if y := f.ProcessSample(0); y != 1 {
		t.Errorf("history after Configure: got %v, want 1", y)
	}
}

func TestConfigure_CopiesCoefficients(t *testing.T) {
	a := []float64{1, -0.5}
	b := []float64{1, 0}

	f := New(1)
	if err := f.Configure(Coefficients{A: a, B: b}); err != nil {
		t.Fatal(err)
	}

	a[1] = 99
	b[0] = 99

	got := f.Coefficients()
	if got.A[1] != -0.5 || got.B[0] != 1 {
		t.Errorf("Configure did not copy: got A=%v B=%v", got.A, got.B)
	}
}

func TestProcessSample_FirstOrderRecurrence(t *testing.T) {
	// y[n] = x[n] + 0.5*y[n-1]: impulse response 1, 0.5, 0.25, ...
	f := New(1)
	if err := f.Configure(Coefficients{A: []float64{1, -0.5}, B: []float64{1, 0}}); err != nil {
		t.Fatal(err)
	}

	want := 1.0
	for i := range 10 {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := f.ProcessSample(x); y != want {
			t.Errorf("sample %d: got %v, want %v", i, y, want)
		}
		want /= 2
	}
}

func TestProcessSample_LeadingCoefficientNormalizes(t *testing.T) {
	// a0 = 2 halves everything relative to a0 = 1.
	f := New(1)
	if err := f.Configure(Coefficients{A: []float64{2, 0}, B: []float64{1, 0}}); err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{1, -4, 0.5} {
		if y := f.ProcessSample(x); y != x/2 {
			t.Errorf("got %v, want %v", y, x/2)
		}
	}
}

func TestProcessSample_ZeroInZeroOut(t *testing.T) {
	f := New(2)
	if err := f.Configure(Coefficients{
		A: []float64{1, -1.8, 0.81},
		B: []float64{0.1, 0.2, 0.1},
	}); err != nil {
		t.Fatal(err)
	}

	for i := range 5 {
		if y := f.ProcessSample(0); y != 0 {
			t.Errorf("sample %d: got %v, want 0", i, y)
		}
	}
}

func TestHistoryWindow(t *testing.T) {
	// b = [2, 0, 0, 0]: outputs are doubled inputs, so the two histories
	// can be checked independently.
	f := New(3)
	if err := f.Configure(Coefficients{
		A: []float64{1, 0, 0, 0},
		B: []float64{2, 0, 0, 0},
	}); err != nil {
		t.Fatal(err)
	}

	for i := 1; i <= 6; i++ {
		f.ProcessSample(float64(i))
	}

	s := f.State()
	if len(s.Input) != 3 || len(s.Output) != 3 {
		t.Fatalf("history lengths: got %d/%d, want 3/3", len(s.Input), len(s.Output))
	}

	wantIn := []float64{6, 5, 4} // most recent first, oldest evicted
	wantOut := []float64{12, 10, 8}
	for i := range wantIn {
		if s.Input[i] != wantIn[i] {
			t.Errorf("input history[%d]: got %v, want %v", i, s.Input[i], wantIn[i])
		}
		if s.Output[i] != wantOut[i] {
			t.Errorf("output history[%d]: got %v, want %v", i, s.Output[i], wantOut[i])
		}
	}
}

func TestReset_MatchesFreshFilter(t *testing.T) {
	coeffs := Coefficients{
		A: []float64{1, -1.8, 0.81},
		B: []float64{0.1, 0.2, 0.1},
	}

	used := New(2)
	if err := used.Configure(coeffs); err != nil {
		t.Fatal(err)
	}
	for i := range 50 {
		used.ProcessSample(math.Sin(0.3 * float64(i)))
	}
	used.Reset()

	fresh := New(2)
	if err := fresh.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	for i := range 20 {
		x := math.Cos(0.17 * float64(i))
		if got, want := used.ProcessSample(x), fresh.ProcessSample(x); got != want {
			t.Fatalf("sample %d after Reset: got %v, want %v", i, got, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	coeffs := Coefficients{
		A: []float64{1, -0.9, 0.2},
		B: []float64{0.3, 0.4, 0.3},
	}

	f1 := New(2)
	f2 := New(2)
	if err := f1.Configure(coeffs); err != nil {
		t.Fatal(err)
	}
	if err := f2.Configure(coeffs); err != nil {
		t.Fatal(err)
	}

	for i := range 200 {
		x := math.Sin(0.05*float64(i)) * math.Cos(0.31*float64(i))
		if y1, y2 := f1.ProcessSample(x), f2.ProcessSample(x); y1 != y2 {
			t.Fatalf("sample %d: outputs diverge (%v vs %v)", i, y1, y2)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	coeffs := Coefficients{
		A: []float64{1, -0.5, 0.1},
		B: []float64{0.25, 0.5, 0.25},
	}
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	f1 := New(2)
	if err := f1.Configure(coeffs); err != nil {
		t.Fatal(err)
	}
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = f1.ProcessSample(x)
	}

	f2 := New(2)
	if err := f2.Configure(coeffs); err != nil {
		t.Fatal(err)
	}
	block := make([]float64, len(input))
	copy(block, input)
	f2.ProcessBlock(block)

	for i := range ref {
		if block[i] != ref[i] {
			t.Errorf("sample %d: got %v, want %v", i, block[i], ref[i])
		}
	}

	f3 := New(2)
	if err := f3.Configure(coeffs); err != nil {
		t.Fatal(err)
	}
	dst := make([]float64, len(input))
	f3.ProcessBlockTo(dst, input)

	for i := range ref {
		if dst[i] != ref[i] {
			t.Errorf("ProcessBlockTo sample %d: got %v, want %v", i, dst[i], ref[i])
		}
	}
}

func TestNewWithCoefficients(t *testing.T) {
	f, err := NewWithCoefficients(Coefficients{
		A: []float64{1, -0.5},
		B: []float64{1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if f.Order() != 1 {
		t.Errorf("Order: got %d, want 1", f.Order())
	}

	if _, err := NewWithCoefficients(Coefficients{A: []float64{1}, B: []float64{1}}); !errors.Is(err, ErrCoefficientLength) {
		t.Errorf("order-0 vectors: got %v, want ErrCoefficientLength", err)
	}

	if _, err := NewWithCoefficients(Coefficients{
		A: []float64{1, 0, 0},
		B: []float64{1, 0},
	}); !errors.Is(err, ErrCoefficientLength) {
		t.Errorf("mismatched vectors: got %v, want ErrCoefficientLength", err)
	}
}

func TestState_RoundTrip(t *testing.T) {
	f := New(2)
	if err := f.Configure(Coefficients{
		A: []float64{1, -0.9, 0.2},
		B: []float64{0.3, 0.4, 0.3},
	}); err != nil {
		t.Fatal(err)
	}

	f.ProcessSample(1)
	f.ProcessSample(-0.5)
	saved := f.State()

	// Continue, then restore and verify the continuation replays.
	want := f.ProcessSample(0.25)
	f.ProcessSample(3)
	f.SetState(saved)

	if got := f.ProcessSample(0.25); got != want {
		t.Errorf("after SetState: got %v, want %v", got, want)
	}
}
