package middleware

import (
	"testing"

	"shopifyte/internal/domain"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Feature: storefront-schema, Property 4: Missing required fields are reported by name
func TestProperty_RequiredFieldErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("each missing required field yields one formatted error", prop.ForAll(
		func(includeName bool, includeEmail bool, includeSubject bool) bool {
			msg := &domain.ContactMessage{Message: "Hello"}
			expected := 0
			if includeName {
				msg.Name = "Ana"
			} else {
				expected++
			}
			if includeEmail {
				msg.Email = "ana@example.com"
			} else {
				expected++
			}
			if includeSubject {
				msg.Subject = "Order"
			} else {
				expected++
			}

			errs := FormatValidationErrors(msg.Validate())
			if len(errs) != expected {
				return false
			}
			for _, ve := range errs {
				if ve.Field == "" || ve.Message != "This field is required" {
					return false
				}
			}
			return true
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Quantity bound violations carry the bound in the message
func TestProperty_QuantityBoundIsFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("negative quantities are rejected with the bound", prop.ForAll(
		func(quantity int) bool {
			item := &domain.CartItem{CartID: uuid.New(), ProductID: uuid.New(), Quantity: quantity}
			errs := FormatValidationErrors(item.Validate())

			if quantity >= 0 {
				return len(errs) == 0
			}
			return len(errs) == 1 &&
				errs[0].Field == "Quantity" &&
				errs[0].Message == "Value must be greater than or equal to 0"
		},
		gen.IntRange(-100, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	if errs := FormatValidationErrors(domain.ErrAmountOutOfRange); len(errs) != 0 {
		t.Errorf("Expected no validation errors, got %v", errs)
	}
	if errs := FormatValidationErrors(nil); len(errs) != 0 {
		t.Errorf("Expected no validation errors for nil, got %v", errs)
	}
}

func TestFormatValidationErrorsDescribesTags(t *testing.T) {
	banner := domain.NewBanner(domain.BannerImageDir+"a.png", "not a url", nil)
	errs := FormatValidationErrors(banner.Validate())
	if len(errs) != 1 || errs[0].Message != "Invalid URL" {
		t.Errorf("Unexpected errors: %v", errs)
	}

	user := &domain.User{Username: "ana", PasswordHash: "x", Role: "owner"}
	errs = FormatValidationErrors(user.Validate())
	if len(errs) != 1 || errs[0].Field != "Role" || errs[0].Message != "Value must be one of: user admin" {
		t.Errorf("Unexpected errors: %v", errs)
	}
}
