package transactionController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	transactionValidator "elearn/validators/transaction"
	"math"

	"github.com/gofiber/fiber/v2"
)

// GetTransactions lists purchase history scoped by the caller's role.
// Students only ever see their own purchases and never other users'
// emails; admins see everything, always newest first.
func GetTransactions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user!", nil)
	}

	role, ok := c.Locals("role").(models.Role)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid user!", nil)
	}

	reqData, ok := c.Locals("validatedTransactionList").(*transactionValidator.TransactionListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := database.Database.Db.Model(&models.Purchase{}).
		Joins("JOIN courses ON courses.id = purchases.course_id").
		Joins("JOIN users ON users.id = purchases.user_id")

	switch role {
	case models.RoleStudent:
		query = query.Where("purchases.user_id = ?", userID)
		if reqData.CourseName != "" {
			query = query.Where("courses.title LIKE ?", "%"+reqData.CourseName+"%")
		}
		if reqData.SortBy == "desc" {
			query = query.Order("purchases.purchased_at desc")
		} else {
			query = query.Order("purchases.purchased_at asc")
		}
	case models.RoleAdmin:
		if reqData.UserEmail != "" {
			query = query.Where("users.email LIKE ?", "%"+reqData.UserEmail+"%")
		}
		if reqData.CourseName != "" {
			query = query.Where("courses.title LIKE ?", "%"+reqData.CourseName+"%")
		}
		// Admin listing is always newest first, whatever sortBy says
		query = query.Order("purchases.purchased_at desc")
	default:
		// Unrecognized roles are answered as if the resource does not
		// exist, kept for API compatibility
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Transactions not found!", nil)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}
	totalPages := int(math.Ceil(float64(total) / float64(reqData.Size)))

	var purchases []models.Purchase
	offset := (reqData.Page - 1) * reqData.Size
	err := query.Preload("Course").Preload("User").Preload("Coupon").
		Offset(offset).Limit(reqData.Size).Find(&purchases).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	rows := make([]fiber.Map, 0, len(purchases))
	for _, purchase := range purchases {
		couponCode := ""
		if purchase.Coupon != nil {
			couponCode = purchase.Coupon.Code
		}

		row := fiber.Map{
			"transactionId": purchase.ID,
			"courseTitle":   purchase.Course.Title,
			"purchaseDate":  purchase.PurchasedAt,
			"amount":        purchase.Course.Price,
			"couponCode":    couponCode,
			"paidAmount":    purchase.PricePaid,
		}
		if role == models.RoleAdmin {
			row["userEmail"] = purchase.User.Email
			row["courseId"] = purchase.CourseID
		}
		rows = append(rows, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully!", fiber.Map{
		"transactions": rows,
		"pagination": fiber.Map{
			"page":       reqData.Page,
			"size":       reqData.Size,
			"totalPages": totalPages,
		},
	})
}
