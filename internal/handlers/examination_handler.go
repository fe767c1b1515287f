package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-service/internal/middleware"
	"exam-service/internal/models"
	"exam-service/internal/service"
)

type ExaminationHandler struct {
	Service *service.ExaminationService
}

func NewExaminationHandler(s *service.ExaminationService) *ExaminationHandler {
	return &ExaminationHandler{Service: s}
}

func (h *ExaminationHandler) CreateExamination(c *gin.Context) {
	var exam models.Examination
	if err := c.ShouldBindJSON(&exam); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	exam.InstructorID = middleware.UserID(c)
	if err := h.Service.CreateExamination(context.Background(), &exam); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, exam)
}

func (h *ExaminationHandler) GetExamination(c *gin.Context) {
	exam, err := h.Service.GetExamination(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exam == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Examination not found"})
		return
	}
	c.JSON(http.StatusOK, exam)
}

func (h *ExaminationHandler) ListExaminations(c *gin.Context) {
	exams, err := h.Service.ListByInstructor(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, exams)
}

func (h *ExaminationHandler) UpdateExamination(c *gin.Context) {
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateExamination(context.Background(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *ExaminationHandler) DeleteExamination(c *gin.Context) {
	if err := h.Service.DeleteExamination(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
