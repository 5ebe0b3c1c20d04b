package couponRoutes

import (
	controllers "elearn/controllers/coupon"
	"elearn/middleware"
	"elearn/models"
	validators "elearn/validators/coupon"

	"github.com/gofiber/fiber/v2"
)

func SetupCouponRoutes(app *fiber.App) {
	couponGroup := app.Group("/api/coupons")

	couponGroup.Get("/", controllers.GetAllCoupons)

	// Admin coupon management
	couponGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.SaveCoupon(), controllers.CreateCoupon)
	couponGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CouponID(), validators.SaveCoupon(), controllers.UpdateCoupon)
}
