package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseValidator "elearn/validators/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PurchaseCourse records a course purchase, applying an optional coupon.
// Coupon eligibility and quota consumption happen in the same database
// transaction as the purchase insert, so a failed purchase never burns
// quota and quota can never go negative.
func PurchaseCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Please login to purchase!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedPurchase").(*courseValidator.PurchaseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var discount float64
	var couponID *uint
	couponCode := ""

	tx := db.Begin()

	if reqData.CouponCode != "" {
		var coupon models.Coupon
		err := tx.Where("code = ? AND expiry_date >= ? AND quota > 0", reqData.CouponCode, time.Now()).
			First(&coupon).Error
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Coupon code has expired or quota exceeded!", nil)
		}

		// Conditional decrement: quota > 0 is re-checked by the UPDATE
		// itself, so two concurrent purchases racing for the last unit
		// cannot both win. The loser sees zero rows affected.
		result := tx.Model(&models.Coupon{}).
			Where("id = ? AND quota > 0", coupon.ID).
			UpdateColumn("quota", gorm.Expr("quota - 1"))
		if result.Error != nil {
			tx.Rollback()
			log.Printf("Error decrementing coupon quota: %v", result.Error)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase course!", nil)
		}
		if result.RowsAffected == 0 {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Coupon code has expired or quota exceeded!", nil)
		}

		discount = course.Price * coupon.DiscountPct / 100
		couponID = &coupon.ID
		couponCode = coupon.Code
	}

	purchase := models.Purchase{
		UserID:        userID,
		CourseID:      course.ID,
		CouponID:      couponID,
		PricePaid:     course.Price - discount,
		PaymentMethod: reqData.PaymentMethod,
		PurchasedAt:   time.Now().UTC(),
	}

	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		log.Printf("Error recording purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to purchase course!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course purchased successfully.", fiber.Map{
		"purchaseId":      purchase.ID,
		"courseId":        course.ID,
		"userId":          userID,
		"purchaseDate":    purchase.PurchasedAt.Format(time.RFC3339),
		"paymentMethod":   purchase.PaymentMethod,
		"couponCode":      couponCode,
		"originalPrice":   course.Price,
		"discountApplied": discount,
		"paidAmount":      purchase.PricePaid,
	})
}
