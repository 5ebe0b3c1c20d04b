package couponValidator

import (
	"elearn/middleware"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CouponRequest is the payload for coupon create and update
type CouponRequest struct {
	CouponCode    string    `json:"couponCode"`
	DiscountValue float64   `json:"discountValue"`
	Quota         int       `json:"quota"`
	ExpiryDate    time.Time `json:"expiryDate"`
}

// SaveCoupon validates the create/update coupon payload
func SaveCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CouponRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.CouponCode) == "" {
			errors["couponCode"] = "Coupon code is required!"
		}

		// Discounts above 100% would produce negative paid amounts, so they
		// are rejected up front rather than clamped at purchase time.
		if reqData.DiscountValue <= 0 || reqData.DiscountValue > 100 {
			errors["discountValue"] = "Discount must be between 1 and 100!"
		}

		if reqData.Quota <= 0 {
			errors["quota"] = "Quota must be greater than 0!"
		}

		if !reqData.ExpiryDate.After(time.Now()) {
			errors["expiryDate"] = "Expiry date must be in the future!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCoupon", reqData)
		return c.Next()
	}
}

// CouponID validates the :id path parameter
func CouponID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"id": "Coupon id must be numeric!",
			})
		}

		c.Locals("couponID", id)
		return c.Next()
	}
}
