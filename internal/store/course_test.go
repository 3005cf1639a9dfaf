package store

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseFilterNormalize(t *testing.T) {
	f := CourseFilter{}.Normalize()
	assert.Equal(t, CourseOrderByTitle, f.OrderBy)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 0, f.Offset())

	f = CourseFilter{Search: "go", OrderBy: CourseOrderByID, Page: 3}.Normalize()
	assert.Equal(t, CourseOrderByID, f.OrderBy)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, "go", f.Search)
}

func TestCourseFilterOffsetNeverNegative(t *testing.T) {
	maxOffset := (MaxCoursePage - 1) * CoursePageSize
	tests := map[int]int{
		-5:                0,
		0:                 0,
		MaxCoursePage:     maxOffset,
		MaxCoursePage + 1: maxOffset,
		math.MaxInt:       maxOffset,
	}
	for page, want := range tests {
		assert.Equal(t, want, CourseFilter{Page: page}.Offset(), "page %d", page)
	}
}

func TestCourseFilterOffsetUsesPageSize(t *testing.T) {
	for page, want := range map[int]int{1: 0, 2: CoursePageSize, 5: 4 * CoursePageSize} {
		assert.Equal(t, want, CourseFilter{Page: page}.Offset(), "page %d", page)
	}
}

func TestCourseOrderFieldValid(t *testing.T) {
	assert.True(t, CourseOrderByID.Valid())
	assert.True(t, CourseOrderByTitle.Valid())
	assert.False(t, CourseOrderField("description").Valid())
	assert.False(t, CourseOrderField("").Valid())
}
