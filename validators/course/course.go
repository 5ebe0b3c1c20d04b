package courseValidator

import (
	"elearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CourseListRequest carries validated catalog listing params
type CourseListRequest struct {
	Title string
	Sort  string
	Page  int
	Size  int
}

// CourseRequest is the payload for course create and update
type CourseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Duration    int      `json:"duration"`
	Modules     []string `json:"modules"`
}

// PurchaseRequest is the payload for a course purchase
type PurchaseRequest struct {
	PaymentMethod string `json:"paymentMethod"`
	CouponCode    string `json:"couponCode"`
}

var supportedPaymentMethods = map[string]bool{
	"credit_card": true,
	"debit_card":  true,
	"paypal":      true,
}

// CourseList validator middleware
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 1)
		if page <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"page": "Page must be a positive integer!",
			})
		}

		// A non-positive size silently falls back to the default
		size := c.QueryInt("size", 10)
		if size <= 0 {
			size = 10
		}

		sort := strings.ToLower(c.Query("sort", "desc"))

		c.Locals("validatedList", &CourseListRequest{
			Title: c.Query("title"),
			Sort:  sort,
			Page:  page,
			Size:  size,
		})
		return c.Next()
	}
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Course id must be numeric!",
			})
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}

// SaveCourse validates the create/update course payload
func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if reqData.Duration <= 0 {
			errors["duration"] = "Duration must be greater than 0!"
		}

		if len(reqData.Modules) < 3 {
			errors["modules"] = "Course must contain at least 3 modules!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// PurchaseCourse validates the purchase payload
func PurchaseCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PurchaseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		method := strings.ToLower(strings.TrimSpace(reqData.PaymentMethod))
		if !supportedPaymentMethods[method] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"paymentMethod": "Payment method not supported!",
			})
		}
		reqData.PaymentMethod = method

		c.Locals("validatedPurchase", reqData)
		return c.Next()
	}
}
