package domain

import (
	"errors"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinCourseTitleLength is the minimum number of characters in a course title.
const MinCourseTitleLength = 5

// Course validation errors
var (
	// ErrCourseIDEmpty is returned when a course ID is nil.
	ErrCourseIDEmpty = errors.New("course ID cannot be empty")

	// ErrCourseTitleEmpty is returned when a course title is empty.
	ErrCourseTitleEmpty = errors.New("course title cannot be empty")

	// ErrCourseTitleTooShort is returned when a course title is shorter than MinCourseTitleLength.
	ErrCourseTitleTooShort = errors.New("course title is too short")
)

// Course is a learning unit with a title and an optional description.
type Course struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

// NewCourse creates a Course with a fresh ID and no description.
// Returns an error if the title is invalid.
func NewCourse(title string) (*Course, error) {
	course := &Course{
		ID:    uuid.New(),
		Title: title,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks that the course has an ID and an acceptable title.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCourseIDEmpty
	}

	if c.Title == "" {
		return ErrCourseTitleEmpty
	}

	if utf8.RuneCountInString(c.Title) < MinCourseTitleLength {
		return ErrCourseTitleTooShort
	}

	return nil
}

// CourseSummary is a listing row: a course and the number of users enrolled in it.
type CourseSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Enrollments int       `json:"enrollments"`
}
