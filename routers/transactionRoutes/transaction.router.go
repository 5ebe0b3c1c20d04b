package transactionRoutes

import (
	controllers "elearn/controllers/transaction"
	"elearn/middleware"
	validators "elearn/validators/transaction"

	"github.com/gofiber/fiber/v2"
)

func SetupTransactionRoutes(app *fiber.App) {
	transactionGroup := app.Group("/api/transactions")

	transactionGroup.Get("/", middleware.JWTMiddleware, validators.TransactionList(), controllers.GetTransactions)
}
