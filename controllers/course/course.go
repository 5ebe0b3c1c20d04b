package courseController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseValidator "elearn/validators/course"
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
)

func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.CourseListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := database.Database.Db.Model(&models.Course{})

	if reqData.Title != "" {
		query = query.Where("title LIKE ?", "%"+reqData.Title+"%")
	}

	order := "created_at desc"
	if reqData.Sort == "asc" {
		order = "created_at asc"
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	totalPages := int(math.Ceil(float64(total) / float64(reqData.Size)))

	// Fetch paginated data
	var courses []models.Course
	offset := (reqData.Page - 1) * reqData.Size
	if err := query.Order(order).Offset(offset).Limit(reqData.Size).Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	rows := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		rows = append(rows, fiber.Map{
			"id":          course.ID,
			"title":       course.Title,
			"description": course.Description,
			"price":       course.Price,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": rows,
		"pagination": fiber.Map{
			"page":       reqData.Page,
			"size":       reqData.Size,
			"totalPages": totalPages,
		},
	})
}

func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Preload("Modules").Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Module titles only, content stays behind the purchase
	moduleTitles := make([]string, 0, len(course.Modules))
	for _, module := range course.Modules {
		moduleTitles = append(moduleTitles, module.Title)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"id":          course.ID,
		"title":       course.Title,
		"description": course.Description,
		"price":       course.Price,
		"duration":    fmt.Sprintf("%d minutes", course.Duration),
		"modules":     moduleTitles,
	})
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	modules := make([]models.CourseModule, 0, len(reqData.Modules))
	for _, title := range reqData.Modules {
		modules = append(modules, models.CourseModule{Title: title})
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Duration:    reqData.Duration,
		Modules:     modules,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", fiber.Map{
		"courseId":    course.ID,
		"title":       course.Title,
		"description": course.Description,
		"price":       course.Price,
		"duration":    fmt.Sprintf("%d minutes", course.Duration),
		"modules":     reqData.Modules,
	})
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = reqData.Price
	course.Duration = reqData.Duration

	modules := make([]models.CourseModule, 0, len(reqData.Modules))
	for _, title := range reqData.Modules {
		modules = append(modules, models.CourseModule{CourseID: course.ID, Title: title})
	}

	// The module list is owned by the course and replaced wholesale,
	// all inside one transaction
	tx := db.Begin()

	if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseModule{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := tx.Create(&modules).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := tx.Omit("Modules").Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", fiber.Map{
		"courseId":    course.ID,
		"title":       course.Title,
		"description": course.Description,
		"price":       course.Price,
		"duration":    fmt.Sprintf("%d minutes", course.Duration),
		"modules":     reqData.Modules,
	})
}
