// Package dto defines data transfer objects for the courses feature's HTTP transport layer.
package dto

import "courses_backend/internal/feature/courses/usecase"

// CourseReq represents the request body for the course create and update
// endpoints. Pointer fields distinguish "absent" from "empty" so that updates
// can be partial. A userId field is deliberately not accepted: ownership
// always derives from the authenticated requester, never from the body.
type CourseReq struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EstimatedTime   *string `json:"estimatedTime"`
	MaterialsNeeded *string `json:"materialsNeeded"`
}

// ToInput converts the request body into the usecase input value.
func (r CourseReq) ToInput() usecase.CourseInput {
	return usecase.CourseInput{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}
