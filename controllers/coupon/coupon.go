package couponController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	couponValidator "elearn/validators/coupon"
	"log"

	"github.com/gofiber/fiber/v2"
)

func couponResponse(coupon *models.Coupon) fiber.Map {
	return fiber.Map{
		"couponId":      coupon.ID,
		"couponCode":    coupon.Code,
		"discountValue": coupon.DiscountPct,
		"expiryDate":    coupon.ExpiryDate,
		"quota":         coupon.Quota,
	}
}

func GetAllCoupons(c *fiber.Ctx) error {
	var coupons []models.Coupon
	if err := database.Database.Db.Order("expiry_date desc").Find(&coupons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch coupons!", nil)
	}

	rows := make([]fiber.Map, 0, len(coupons))
	for i := range coupons {
		rows = append(rows, couponResponse(&coupons[i]))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupons fetched successfully!", fiber.Map{
		"coupons": rows,
	})
}

func CreateCoupon(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCoupon").(*couponValidator.CouponRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Coupon codes are unique, compared case-insensitively
	if err := db.Where("LOWER(code) = LOWER(?)", reqData.CouponCode).First(&models.Coupon{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Coupon code must be unique!", nil)
	}

	coupon := models.Coupon{
		Code:        reqData.CouponCode,
		DiscountPct: reqData.DiscountValue,
		Quota:       reqData.Quota,
		ExpiryDate:  reqData.ExpiryDate,
	}

	if err := db.Create(&coupon).Error; err != nil {
		log.Printf("Error saving coupon to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create coupon!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Coupon created successfully.", couponResponse(&coupon))
}

func UpdateCoupon(c *fiber.Ctx) error {
	couponID := c.Locals("couponID").(int)

	reqData, ok := c.Locals("validatedCoupon").(*couponValidator.CouponRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var coupon models.Coupon
	if err := db.Where("id = ?", couponID).First(&coupon).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Coupon not found!", nil)
	}

	// A coupon may keep its own code; colliding with a different coupon's
	// code is a conflict
	var existing models.Coupon
	err := db.Where("LOWER(code) = LOWER(?) AND id <> ?", reqData.CouponCode, coupon.ID).First(&existing).Error
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Coupon code must be unique!", nil)
	}

	coupon.Code = reqData.CouponCode
	coupon.DiscountPct = reqData.DiscountValue
	coupon.Quota = reqData.Quota
	coupon.ExpiryDate = reqData.ExpiryDate

	if err := db.Save(&coupon).Error; err != nil {
		log.Printf("Error updating coupon: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update coupon!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Coupon updated successfully.", couponResponse(&coupon))
}
