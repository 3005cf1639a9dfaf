package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Enrollment validation errors
var (
	ErrEnrollmentCourseIDEmpty = errors.New("enrollment course ID cannot be empty")
	ErrEnrollmentUserIDEmpty   = errors.New("enrollment user ID cannot be empty")
)

// Enrollment associates one user with one course.
type Enrollment struct {
	CourseID uuid.UUID `json:"course_id"`
	UserID   uuid.UUID `json:"user_id"`
}

// NewEnrollment creates an Enrollment linking userID to courseID.
func NewEnrollment(courseID, userID uuid.UUID) (*Enrollment, error) {
	e := &Enrollment{
		CourseID: courseID,
		UserID:   userID,
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks that both sides of the association are set.
func (e *Enrollment) Validate() error {
	if e.CourseID == uuid.Nil {
		return ErrEnrollmentCourseIDEmpty
	}
	if e.UserID == uuid.Nil {
		return ErrEnrollmentUserIDEmpty
	}
	return nil
}
