package production

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/ordash/ordash/internal/models"
)

// Program is a linear program over nonnegative continuous variables:
//
//	maximize   Objective·x
//	subject to Constraints·x <= Bounds
//	           x >= 0
type Program struct {
	Objective   []float64
	Constraints [][]float64
	Bounds      []float64
}

// Validate checks that the dimensions of the program agree.
func (p Program) Validate() error {
	n := len(p.Objective)
	if n == 0 {
		return errors.New("program has no variables")
	}
	if len(p.Constraints) != len(p.Bounds) {
		return fmt.Errorf("program has %d constraint rows but %d bounds", len(p.Constraints), len(p.Bounds))
	}
	for i, row := range p.Constraints {
		if len(row) != n {
			return fmt.Errorf("constraint %d has %d coefficients, want %d", i, len(row), n)
		}
	}
	return nil
}

// Value returns the objective value at x.
func (p Program) Value(x []float64) float64 {
	v := 0.0
	for i, c := range p.Objective {
		v += c * x[i]
	}
	return v
}

// Solver maximizes a Program. Implementations report models.ErrInfeasible or
// models.ErrUnbounded when no finite optimum exists.
type Solver interface {
	Name() string
	Maximize(p Program) ([]float64, error)
}

// Solver names accepted by NewSolver.
const (
	SolverSimplex = "simplex"
	SolverVertex  = "vertex"
)

// NewSolver returns the solver registered under name.
// An empty name selects the simplex solver.
func NewSolver(name string) (Solver, error) {
	switch name {
	case "", SolverSimplex:
		return SimplexSolver{Tolerance: defaultTolerance}, nil
	case SolverVertex:
		return VertexSolver{Tolerance: defaultTolerance}, nil
	}
	return nil, fmt.Errorf("unknown solver %q", name)
}

const defaultTolerance = 1e-10

// SimplexSolver solves programs with gonum's dense simplex implementation.
type SimplexSolver struct {
	Tolerance float64
}

// Name implements Solver.
func (SimplexSolver) Name() string { return SolverSimplex }

// Maximize implements Solver. Each inequality row receives a slack column so
// the program can be handed to lp.Simplex in standard form.
func (s SimplexSolver) Maximize(p Program) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := len(p.Objective)
	m := len(p.Constraints)
	if m == 0 {
		return nil, unboundedOrOrigin(p)
	}

	cols := n + m
	c := make([]float64, cols)
	for j, v := range p.Objective {
		c[j] = -v
	}

	a := mat.NewDense(m, cols, nil)
	for i, row := range p.Constraints {
		for j, v := range row {
			a.Set(i, j, v)
		}
		a.Set(i, n+i, 1)
	}

	b := make([]float64, m)
	copy(b, p.Bounds)

	_, x, err := lp.Simplex(c, a, b, s.Tolerance, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return nil, models.ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return nil, models.ErrUnbounded
	case err != nil:
		return nil, fmt.Errorf("simplex: %w", err)
	}

	out := make([]float64, n)
	for j := range out {
		out[j] = clampZero(x[j])
	}
	return out, nil
}

// unboundedOrOrigin handles a program without constraints: the origin is
// optimal unless some objective coefficient is positive.
func unboundedOrOrigin(p Program) error {
	for _, v := range p.Objective {
		if v > 0 {
			return models.ErrUnbounded
		}
	}
	return nil
}

// VertexSolver enumerates the vertices of a two-variable program. It evaluates
// every pairwise intersection of the constraint lines and the axes, keeps the
// feasible ones, and checks the recession directions for unboundedness.
type VertexSolver struct {
	Tolerance float64
}

// Name implements Solver.
func (VertexSolver) Name() string { return SolverVertex }

// line is a·x = rhs in two variables.
type line struct {
	a   [2]float64
	rhs float64
}

// Maximize implements Solver.
func (s VertexSolver) Maximize(p Program) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(p.Objective) != 2 {
		return nil, fmt.Errorf("vertex solver supports 2 variables, got %d", len(p.Objective))
	}

	tol := s.Tolerance
	if tol <= 0 {
		tol = defaultTolerance
	}

	lines := []line{
		{a: [2]float64{1, 0}},
		{a: [2]float64{0, 1}},
	}
	for i, row := range p.Constraints {
		lines = append(lines, line{a: [2]float64{row[0], row[1]}, rhs: p.Bounds[i]})
	}

	var best []float64
	bestValue := math.Inf(-1)
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			pt, ok := intersect(lines[i], lines[j])
			if !ok || !s.feasible(p, pt, tol) {
				continue
			}
			if v := p.Value(pt); v > bestValue+tol {
				best, bestValue = pt, v
			}
		}
	}

	if best == nil {
		return nil, models.ErrInfeasible
	}
	if s.unbounded(p, lines, tol) {
		return nil, models.ErrUnbounded
	}

	return []float64{clampZero(best[0]), clampZero(best[1])}, nil
}

// intersect solves the 2×2 system formed by two lines.
func intersect(l1, l2 line) ([]float64, bool) {
	det := l1.a[0]*l2.a[1] - l1.a[1]*l2.a[0]
	if math.Abs(det) < 1e-12 {
		return nil, false
	}
	x := (l1.rhs*l2.a[1] - l1.a[1]*l2.rhs) / det
	y := (l1.a[0]*l2.rhs - l1.rhs*l2.a[0]) / det
	return []float64{x, y}, true
}

func (s VertexSolver) feasible(p Program, x []float64, tol float64) bool {
	scale := 1 + math.Abs(x[0]) + math.Abs(x[1])
	if x[0] < -tol*scale || x[1] < -tol*scale {
		return false
	}
	for i, row := range p.Constraints {
		lhs := row[0]*x[0] + row[1]*x[1]
		if lhs > p.Bounds[i]+tol*(scale+math.Abs(p.Bounds[i])) {
			return false
		}
	}
	return true
}

// unbounded reports whether a feasible direction improves the objective.
// In two dimensions the recession cone is spanned by rays lying on the axes
// or on a constraint's homogeneous line, so those candidates suffice.
func (s VertexSolver) unbounded(p Program, lines []line, tol float64) bool {
	for _, l := range lines {
		for _, d := range [][2]float64{{l.a[1], -l.a[0]}, {-l.a[1], l.a[0]}} {
			if d[0] < -tol || d[1] < -tol {
				continue
			}
			ok := true
			for _, row := range p.Constraints {
				if row[0]*d[0]+row[1]*d[1] > tol {
					ok = false
					break
				}
			}
			if ok && p.Objective[0]*d[0]+p.Objective[1]*d[1] > tol {
				return true
			}
		}
	}
	return false
}

// clampZero removes round-off below zero, negative zero included.
func clampZero(v float64) float64 {
	if v <= 0 && v > -1e-9 {
		return 0
	}
	return v
}
