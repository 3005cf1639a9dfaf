package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		title   string
		wantErr error
	}{
		{name: "valid title", title: "Go for backend developers"},
		{name: "exactly minimum length", title: "Golan"},
		{name: "multibyte title counted in runes", title: "Ação!"},
		{name: "empty title", title: "", wantErr: ErrCourseTitleEmpty},
		{name: "title too short", title: "Go!!", wantErr: ErrCourseTitleTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			course, err := NewCourse(tt.title)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, course)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, course.ID)
			assert.Equal(t, tt.title, course.Title)
			assert.Nil(t, course.Description, "new courses have no description")
		})
	}
}

func TestCourseValidate_EmptyID(t *testing.T) {
	t.Parallel()

	course := &Course{Title: "Valid title"}
	assert.ErrorIs(t, course.Validate(), ErrCourseIDEmpty)
}

func TestNewEnrollment(t *testing.T) {
	t.Parallel()

	courseID, userID := uuid.New(), uuid.New()

	e, err := NewEnrollment(courseID, userID)
	require.NoError(t, err)
	assert.Equal(t, courseID, e.CourseID)
	assert.Equal(t, userID, e.UserID)

	_, err = NewEnrollment(uuid.Nil, userID)
	assert.ErrorIs(t, err, ErrEnrollmentCourseIDEmpty)

	_, err = NewEnrollment(courseID, uuid.Nil)
	assert.ErrorIs(t, err, ErrEnrollmentUserIDEmpty)
}
