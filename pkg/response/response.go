// Package response holds the JSON error envelope returned by the HTTP API.
package response

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const StatusError = "error"

var (
	EmptyRequestBodyResponse = Response{
		Status:  StatusError,
		Message: "Request body is empty. Please provide necessary data.",
	}
	BadRequestResponse = Response{
		Status:  StatusError,
		Message: "Request body is invalid. Please check the data and try again.",
	}
	ResourceNotFoundResponse = Response{
		Status:  StatusError,
		Message: "The requested resource was not found.",
	}
	ServerErrorResponse = Response{
		Status:  StatusError,
		Message: "An internal server error occurred. Please try again later.",
	}
	ServiceUnavailableResponse = Response{
		Status:  StatusError,
		Message: "No free short code could be allocated. Please try again later.",
	}
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

func messageForTag(tag string) string {
	switch tag {
	case "required":
		return "this field is required"
	default:
		return "invalid value"
	}
}

// ValidationErrorResponse lists the failed fields of a validator.ValidationErrors.
// Any other error yields the envelope without field details.
func ValidationErrorResponse(err error) Response {
	resp := Response{
		Status:  StatusError,
		Message: "Validation failed. Please check the fields and try again.",
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			resp.Errors = append(resp.Errors, ValidationError{
				Field:   e.Field(),
				Message: messageForTag(e.Tag()),
			})
		}
	}

	return resp
}
