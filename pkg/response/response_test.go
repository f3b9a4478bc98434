package response

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestValidationErrorResponse(t *testing.T) {
	type req struct {
		Name string `json:"name" validate:"required"`
		URL  string `json:"url" validate:"required,max=10"`
	}

	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	tests := []struct {
		name string
		err  error
		want []ValidationError
	}{
		{
			name: "not validation error",
			err:  errors.New("unknown error"),
		},
		{
			name: "one error",
			err:  validate.Struct(req{Name: "", URL: "https://a"}),
			want: []ValidationError{
				{Field: "name", Message: "this field is required"},
			},
		},
		{
			name: "two errors",
			err:  validate.Struct(req{Name: "", URL: "https://example.com"}),
			want: []ValidationError{
				{Field: "name", Message: "this field is required"},
				{Field: "url", Message: "invalid value"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidationErrorResponse(tt.err)

			assert.Equal(t, StatusError, got.Status)
			assert.NotEmpty(t, got.Message)
			assert.Equal(t, tt.want, got.Errors)
		})
	}
}
