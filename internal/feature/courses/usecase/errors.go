// Package usecase implements the business logic for the courses feature.
package usecase

import "errors"

var (
	// ErrCourseNotFound is returned when a course cannot be found by ID.
	ErrCourseNotFound = errors.New("course not found")

	// ErrNotCourseOwner is returned when a mutation is attempted by a user
	// other than the course owner. The course is left unchanged.
	ErrNotCourseOwner = errors.New("course is owned by another user")
)
