// Package entity defines the domain entities for the courses feature.
package entity

import "time"

// Course represents a course owned by exactly one user.
type Course struct {
	// ID is the unique identifier for the course.
	ID uint `gorm:"primaryKey"`

	// Title is the course name shown in listings.
	Title string `gorm:"size:255;not null"`

	// Description explains what the course covers.
	Description string `gorm:"type:text;not null"`

	// EstimatedTime is an optional free-form completion estimate.
	EstimatedTime string `gorm:"size:255"`

	// MaterialsNeeded optionally lists what a student should prepare.
	MaterialsNeeded string `gorm:"type:text"`

	// UserID references the owning user. Only the owner may mutate or
	// delete the course.
	UserID uint `gorm:"not null;index"`

	// CreatedAt is the timestamp when the course was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the course was last updated.
	UpdatedAt time.Time
}

// Owner holds the public fields of a course's owning user.
// Identity and credential fields are deliberately excluded.
type Owner struct {
	FirstName string
	LastName  string
	Email     string
}

// CourseWithOwner is the read model for course queries, embedding the
// owner's public fields alongside the course.
type CourseWithOwner struct {
	Course Course
	Owner  Owner
}
