// Package kernel defines the value types shared by the synthesis functions:
// sparse product terms, grade classifiers and grade sets.
package kernel

// Term is one nonzero entry of a structure-constant tensor: basis index K of
// the left operand times basis index M of the right operand contributes
// Coeff * left[K] * right[M] to output slot L.
//
// Term order inside a kernel is the tensor scan order (k, then l, then m) and
// fixes the floating-point accumulation order for reproducibility.
type Term struct {
	K     int     // left-operand basis index
	L     int     // output basis index
	M     int     // right-operand basis index
	Coeff float64 // signed structure constant
}

// GradeFunc maps a canonical basis index to its grade (0 = scalar, 1 = vector,
// and so on up to the pseudoscalar). The synthesizer only ever calls it with
// indices in [0, dims); range checking is the classifier's own concern.
type GradeFunc func(index int) int

// GradeSet is a small set of grades backed by a bitmask. The zero value is the
// empty set. Grades above MaxGrade cannot be represented; no real algebra in
// this library comes anywhere near that bound.
type GradeSet uint64

// MaxGrade is the largest grade value a GradeSet can hold.
const MaxGrade = 63

// NewGradeSet builds a set from the given grade values.
// Panics if a grade is negative or exceeds MaxGrade (programmer error; the
// range check against a concrete algebra happens at synthesis time).
func NewGradeSet(grades ...int) GradeSet {
	var s GradeSet
	for _, g := range grades {
		if g < 0 || g > MaxGrade {
			panic("kernel: NewGradeSet grade out of representable range")
		}
		s |= 1 << uint(g)
	}

	return s
}

// AllGrades returns the set {0, 1, ..., n} for an n-generator algebra.
// Panics if n is negative or exceeds MaxGrade.
func AllGrades(n int) GradeSet {
	if n < 0 || n > MaxGrade {
		panic("kernel: AllGrades n out of representable range")
	}

	return GradeSet(1<<uint(n+1) - 1)
}

// EvenGrades returns the set {0, 2, 4, ...} up to n — the grades a rotor
// populates. Panics if n is negative or exceeds MaxGrade.
func EvenGrades(n int) GradeSet {
	if n < 0 || n > MaxGrade {
		panic("kernel: EvenGrades n out of representable range")
	}
	var s GradeSet
	for g := 0; g <= n; g += 2 {
		s |= 1 << uint(g)
	}

	return s
}

// Has reports whether grade g is in the set. Out-of-range grades are simply
// absent.
func (s GradeSet) Has(g int) bool {
	if g < 0 || g > MaxGrade {
		return false
	}

	return s&(1<<uint(g)) != 0
}

// Empty reports whether the set contains no grades.
func (s GradeSet) Empty() bool { return s == 0 }

// Max returns the largest grade in the set, or -1 for the empty set.
func (s GradeSet) Max() int {
	for g := MaxGrade; g >= 0; g-- {
		if s&(1<<uint(g)) != 0 {
			return g
		}
	}

	return -1
}

// Grades returns the member grades in ascending order. Intended for error
// reporting and tests, not for hot paths.
func (s GradeSet) Grades() []int {
	var out []int
	for g := 0; g <= MaxGrade; g++ {
		if s&(1<<uint(g)) != 0 {
			out = append(out, g)
		}
	}

	return out
}
