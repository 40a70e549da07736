package middleware

import (
	"devops-reference/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalSearchTerm     = "validated_term"
	LocalQuestionNumber = "validated_number"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSearchTerm validates the q query parameter
func (vm *ValidationMiddleware) ValidateSearchTerm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		term := c.Query("q")
		if errors := vm.validator.ValidateSearchTerm(term); len(errors) > 0 {
			return errors // handled by ErrorHandler
		}
		c.Locals(LocalSearchTerm, term)
		return c.Next()
	}
}

// ValidateCatalogKey validates a topic or scenario path parameter
func (vm *ValidationMiddleware) ValidateCatalogKey(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateCatalogKey(param, c.Params(param)); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidateQuestionID validates the :id path parameter
func (vm *ValidationMiddleware) ValidateQuestionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if errors := vm.validator.ValidateQuestionID(c.Params("id")); len(errors) > 0 {
			return errors
		}
		return c.Next()
	}
}

// ValidateQuestionNumber validates the :number path parameter
func (vm *ValidationMiddleware) ValidateQuestionNumber() fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, errors := vm.validator.ParseQuestionNumber(c.Params("number"))
		if len(errors) > 0 {
			return errors
		}
		c.Locals(LocalQuestionNumber, number)
		return c.Next()
	}
}
