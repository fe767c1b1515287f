package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"exam-service/internal/middleware"
	"exam-service/internal/service"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

func (h *SubmissionHandler) SubmitExam(c *gin.Context) {
	var req service.SubmitExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.StudentID = middleware.UserID(c)
	sub, err := h.Service.SubmitExam(context.Background(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *SubmissionHandler) GetSubmission(c *gin.Context) {
	sub, err := h.Service.GetSubmission(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sub == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) GradeSubmission(c *gin.Context) {
	sub, err := h.Service.GradeSubmission(context.Background(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

type manualGradeRequest struct {
	QuestionID string  `json:"question_id" binding:"required"`
	Score      float64 `json:"score"`
	IsCorrect  bool    `json:"is_correct"`
}

func (h *SubmissionHandler) ManualGradeQuestion(c *gin.Context) {
	var req manualGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := h.Service.ManualGradeQuestion(context.Background(), c.Param("id"), req.QuestionID, req.Score, req.IsCorrect, middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *SubmissionHandler) ListBySchedule(c *gin.Context) {
	subs, err := h.Service.ListBySchedule(context.Background(), c.Param("scheduleId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubmissionHandler) ListMySubmissions(c *gin.Context) {
	subs, err := h.Service.ListByStudent(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *SubmissionHandler) CanAttempt(c *gin.Context) {
	allowed, err := strconv.Atoi(c.Query("allowed_attempts"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "allowed_attempts must be an integer"})
		return
	}
	can, err := h.Service.CanStudentAttemptExam(context.Background(), c.Param("scheduleId"), middleware.UserID(c), allowed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_attempt": can})
}

func (h *SubmissionHandler) MarkReviewed(c *gin.Context) {
	if err := h.Service.MarkReviewed(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reviewed"})
}
