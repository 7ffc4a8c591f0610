package helper

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type sampleRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Status   string `json:"status" validate:"omitempty,oneof=draft published"`
}

func TestValidationErrorMap(t *testing.T) {
	v := validator.New()

	t.Run("valid input yields no errors", func(t *testing.T) {
		err := v.Struct(sampleRequest{Email: "a@b.com", Quantity: 2, Status: "draft"})
		if err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
	})

	t.Run("each failing field gets a message", func(t *testing.T) {
		err := v.Struct(sampleRequest{Email: "not-an-email", Quantity: 0, Status: "archived"})
		if err == nil {
			t.Fatal("expected validation errors")
		}
		m := ValidationErrorMap(err)
		for _, field := range []string{"email", "quantity", "status"} {
			if len(m[field]) == 0 {
				t.Errorf("no message for field %s: %v", field, m)
			}
		}
	})
}
