package middleware

import (
	"elearn/config"
	"elearn/models"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const tokenLifetime = 7 * 24 * time.Hour

// GenerateJWT generates a signed token carrying the user's identity claims
func GenerateJWT(userID uint, username string, role models.Role) (string, error) {
	claims := jwt.MapClaims{
		"userId":   userID,
		"username": username,
		"role":     string(role),
		"iss":      config.AppConfig.JWTIssuer,
		"aud":      config.AppConfig.JWTAudience,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorized(c)
	}

	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return unauthorized(c)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return unauthorized(c)
	}

	if !claims.VerifyIssuer(config.AppConfig.JWTIssuer, true) ||
		!claims.VerifyAudience(config.AppConfig.JWTAudience, true) {
		return unauthorized(c)
	}

	// Numeric JWT claims decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok {
		return unauthorized(c)
	}

	username, _ := claims["username"].(string)
	rawRole, _ := claims["role"].(string)

	c.Locals("userId", uint(userID))
	c.Locals("username", username)
	c.Locals("role", models.Role(rawRole))

	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusUnauthorized, false, "Authorization token missing or invalid.", nil)
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
