package admin

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mozqueda-alejandro/nutrition-tracker/internal/service"
)

// addLogRequest - JSON тело POST /admin/logs.
// Quantifier и ReferenceID без binding:"required": валидатор считает
// ноль отсутствующим значением, а id порций начинаются с 0.
// Количество проверяет сервис.
type addLogRequest struct {
	DateTime        string  `json:"date_time" binding:"required"`
	MeasurementType string  `json:"measurement_type" binding:"required"`
	Quantifier      float64 `json:"quantifier"`
	ReferenceID     int     `json:"reference_id"`
}

// SetupRoutes - HTTP-срез над теми же сервисами, что и консольное меню
func SetupRoutes(r *gin.Engine,
	referenceService *service.ReferenceService,
	foodLogService *service.FoodLogService,
) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(AuthMiddleware())

	// Категории
	adminGroup.GET("/categories", func(c *gin.Context) {
		cats, err := referenceService.ListCategories()
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, cats)
	})

	// Продукты категории
	adminGroup.GET("/categories/:id/foods", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid category id"})
			return
		}
		foods, err := referenceService.ListFoods(id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, foods)
	})

	// Порции продукта
	adminGroup.GET("/foods/:id/portions", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "invalid food id"})
			return
		}
		portions, err := referenceService.ListPortions(id)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, portions)
	})

	// Нутриенты за дату: /admin/nutrients/daily?date=2021-01-02
	adminGroup.GET("/nutrients/daily", func(c *gin.Context) {
		day, err := time.Parse("2006-01-02", c.Query("date"))
		if err != nil {
			c.JSON(400, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		nutrients, err := foodLogService.DailyNutrients(day)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, nutrients)
	})

	// Запись в журнал
	adminGroup.POST("/logs", func(c *gin.Context) {
		var req addLogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		dateTime, err := time.ParseInLocation("2006-01-02 15:04:05", req.DateTime, time.Local)
		if err != nil {
			c.JSON(400, gin.H{"error": "date_time must be YYYY-MM-DD HH:MM:SS"})
			return
		}

		dto := service.AddLogDTO{
			DateTime:        dateTime,
			MeasurementType: req.MeasurementType,
			Quantifier:      req.Quantifier,
			ReferenceID:     req.ReferenceID,
		}
		if err := foodLogService.AddLog(dto); err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.JSON(201, gin.H{"status": "ok"})
	})
}
