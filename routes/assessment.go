package routes

import (
	"archetypeagent/controllers"

	"github.com/gin-gonic/gin"
)

// SetupAssessmentRoutes registers the questionnaire and result endpoints.
// Submissions go through the given rate limiting middleware.
func SetupAssessmentRoutes(router gin.IRouter, submitLimit gin.HandlerFunc) {
	router.GET("/status", controllers.GetStatus)

	assessments := router.Group("/assessments")
	{
		assessments.GET("", controllers.ListModels)
		assessments.GET("/:model/questions", controllers.GetQuestions)
		assessments.POST("/:model/submit", submitLimit, controllers.SubmitAssessment)
	}

	results := router.Group("/results")
	{
		results.GET("/:id", controllers.GetResult)
		results.GET("/:id/export", controllers.ExportResult)
	}
}
