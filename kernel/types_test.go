package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/gakernel/kernel"
)

// TestGradeSet_Membership exercises construction and Has across the helpers.
func TestGradeSet_Membership(t *testing.T) {
	s := kernel.NewGradeSet(0, 2, 5)
	assert.True(t, s.Has(0))
	assert.False(t, s.Has(1))
	assert.True(t, s.Has(2))
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(-1), "negative grades are never members")
	assert.False(t, s.Has(64), "out-of-range grades are never members")

	assert.Equal(t, []int{0, 2, 5}, s.Grades())
	assert.Equal(t, 5, s.Max())
	assert.False(t, s.Empty())
}

// TestGradeSet_Helpers checks AllGrades and EvenGrades for a 5-generator
// algebra (the rotor case the sparse synthesizer exists for).
func TestGradeSet_Helpers(t *testing.T) {
	all := kernel.AllGrades(5)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, all.Grades())

	even := kernel.EvenGrades(5)
	assert.Equal(t, []int{0, 2, 4}, even.Grades())
	assert.True(t, even.Has(4))
	assert.False(t, even.Has(5))
}

// TestGradeSet_Zero checks the zero value is the empty set.
func TestGradeSet_Zero(t *testing.T) {
	var s kernel.GradeSet
	assert.True(t, s.Empty())
	assert.Equal(t, -1, s.Max())
	assert.Nil(t, s.Grades())
}

// TestGradeSet_PanicsOnNonsense checks the programmer-error guards.
func TestGradeSet_PanicsOnNonsense(t *testing.T) {
	assert.Panics(t, func() { kernel.NewGradeSet(-1) }, "negative grade must panic")
	assert.Panics(t, func() { kernel.AllGrades(-1) }, "negative n must panic")
	assert.Panics(t, func() { kernel.EvenGrades(64) }, "n beyond MaxGrade must panic")
}
