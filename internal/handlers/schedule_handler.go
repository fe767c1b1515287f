package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"exam-service/internal/middleware"
	"exam-service/internal/service"
)

type ScheduleHandler struct {
	Service *service.ScheduleService
}

func NewScheduleHandler(s *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: s}
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req service.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.InstructorID = middleware.UserID(c)
	schedule, err := h.Service.CreateSchedule(context.Background(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	schedule, err := h.Service.GetSchedule(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, schedule)
}

func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	schedules, err := h.Service.ListByInstructor(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var update map[string]any
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateSettings(context.Background(), c.Param("id"), update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	if err := h.Service.DeleteSchedule(context.Background(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// GetDeliveryQuestions serves the question set a student sees for an
// attempt, shuffled per the schedule's randomize flags.
func (h *ScheduleHandler) GetDeliveryQuestions(c *gin.Context) {
	questions, err := h.Service.DeliveryQuestions(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if questions == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

type accessCheckRequest struct {
	ExamCode string `json:"exam_code"`
}

// CheckAccess verifies the scheduling window and exam code for the
// caller before they start an attempt.
func (h *ScheduleHandler) CheckAccess(c *gin.Context) {
	var req accessCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule, err := h.Service.GetSchedule(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if schedule == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}
	if err := h.Service.CheckAccess(schedule, req.ExamCode, time.Now()); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "can_access": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"can_access": true})
}
