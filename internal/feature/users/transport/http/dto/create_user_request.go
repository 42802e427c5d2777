// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for the POST /users endpoint.
// Field validation happens in the usecase so that every violation can be
// reported in a single aggregated response.
type CreateUserReq struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"emailAddress"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}
