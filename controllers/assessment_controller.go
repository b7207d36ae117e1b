package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"archetypeagent/catalog"
	"archetypeagent/services"
	"archetypeagent/structs"

	"github.com/gin-gonic/gin"
)

func GetStatus(c *gin.Context) {
	probe, _ := strconv.ParseBool(c.Query("probe"))
	c.JSON(http.StatusOK, services.Status(c.Request.Context(), probe))
}

func ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": catalog.Models()})
}

func GetQuestions(c *gin.Context) {
	questions, err := services.Questions(c.Param("model"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func SubmitAssessment(c *gin.Context) {
	var req structs.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	assessment, err := services.SubmitAssessment(c.Request.Context(), c.Param("model"), req.Responses, req.FreeText, req.IncludeInsight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

func GetResult(c *gin.Context) {
	assessment, err := services.GetAssessment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// ExportResult serves the assessment report as a JSON download
func ExportResult(c *gin.Context) {
	assessment, err := services.GetAssessment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	data, err := services.EncodeReport(services.BuildReport(assessment))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+services.ReportFilename(assessment)+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrUnknownModel):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAssessmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
