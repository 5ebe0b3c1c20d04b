package transactionValidator

import (
	"elearn/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TransactionListRequest carries validated transaction listing params
type TransactionListRequest struct {
	CourseName string
	UserEmail  string
	SortBy     string
	Page       int
	Size       int
}

// TransactionList validator middleware
func TransactionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sortBy := strings.ToLower(c.Query("sortBy", "asc"))
		if sortBy != "asc" && sortBy != "desc" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"sortBy": "sortBy must be 'asc' or 'desc'!",
			})
		}

		page := c.QueryInt("page", 1)
		if page < 1 {
			page = 1
		}

		size := c.QueryInt("size", 10)
		if size < 1 {
			size = 10
		}

		c.Locals("validatedTransactionList", &TransactionListRequest{
			CourseName: c.Query("courseName"),
			UserEmail:  c.Query("userEmail"),
			SortBy:     sortBy,
			Page:       page,
			Size:       size,
		})
		return c.Next()
	}
}
