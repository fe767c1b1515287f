package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"exam-service/internal/middleware"
	"exam-service/internal/models"
	"exam-service/internal/service"
)

type BankHandler struct {
	Service *service.BankService
}

func NewBankHandler(s *service.BankService) *BankHandler {
	return &BankHandler{Service: s}
}

type createBankRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *BankHandler) CreateBank(c *gin.Context) {
	var req createBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bank := &models.Bank{
		Name:         req.Name,
		InstructorID: middleware.UserID(c),
	}
	if err := h.Service.CreateBank(context.Background(), bank); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, bank)
}

func (h *BankHandler) GetBank(c *gin.Context) {
	bank, err := h.Service.GetBank(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bank == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) ListBanks(c *gin.Context) {
	banks, err := h.Service.ListBanksByInstructor(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, banks)
}

func (h *BankHandler) DeleteBank(c *gin.Context) {
	bank, err := h.Service.DeleteBank(context.Background(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bank == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank or instructor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "bank": bank})
}

type subBankPathRequest struct {
	Path []string `json:"path"`
}

func (h *BankHandler) CanCreateSubBank(c *gin.Context) {
	var req subBankPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	check, err := h.Service.CanCreateSubBank(context.Background(), c.Param("id"), req.Path)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

func (h *BankHandler) CanCreateSubBankInSubBank(c *gin.Context) {
	check, err := h.Service.CanCreateSubBankInSubBank(context.Background(), c.Param("id"), c.Param("subBankId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, check)
}

type createSubBankRequest struct {
	Name     string   `json:"name" binding:"required"`
	ExamIDs  []string `json:"exam_ids"`
	ParentID string   `json:"parent_id"`
	Path     []string `json:"path"`
}

func (h *BankHandler) CreateSubBank(c *gin.Context) {
	var req createSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.CreateSubBank(context.Background(), c.Param("id"), req.Name, req.ExamIDs, req.ParentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if node == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
		return
	}
	c.JSON(http.StatusCreated, node)
}

func (h *BankHandler) CreateNestedSubBank(c *gin.Context) {
	var req createSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.CreateNestedSubBank(context.Background(), c.Param("id"), req.Path, req.Name, req.ExamIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if node == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank or path not found"})
		return
	}
	c.JSON(http.StatusCreated, node)
}

func (h *BankHandler) CreateSubBankInSubBank(c *gin.Context) {
	var req createSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.CreateSubBankInSubBank(context.Background(), c.Param("id"), c.Param("subBankId"), req.Name, req.ExamIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, node)
}

type examRefRequest struct {
	Path   []string `json:"path"`
	ExamID string   `json:"exam_id" binding:"required"`
}

func (h *BankHandler) AddExamToSubBank(c *gin.Context) {
	var req examRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.AddExamToSubBank(context.Background(), c.Param("id"), req.Path, req.ExamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if node == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank or path not found"})
		return
	}
	c.JSON(http.StatusOK, node)
}

func (h *BankHandler) RemoveExamFromSubBank(c *gin.Context) {
	var req examRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.RemoveExamFromSubBank(context.Background(), c.Param("id"), req.Path, req.ExamID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if node == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bank or path not found"})
		return
	}
	c.JSON(http.StatusOK, node)
}

type deleteSubBankRequest struct {
	Path []string `json:"path"`
}

func (h *BankHandler) DeleteSubBank(c *gin.Context) {
	var req deleteSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	removed, err := h.Service.DeleteSubBank(context.Background(), c.Param("id"), req.Path, c.Param("subBankId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if removed == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sub-bank not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "sub_bank": removed})
}

type updateSubBankRequest struct {
	Name    string   `json:"name"`
	ExamIDs []string `json:"exam_ids"`
}

func (h *BankHandler) RenameSubBank(c *gin.Context) {
	var req updateSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bank, err := h.Service.RenameSubBank(context.Background(), c.Param("id"), c.Param("subBankId"), req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if bank == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sub-bank not found"})
		return
	}
	c.JSON(http.StatusOK, bank)
}

func (h *BankHandler) UpdateSubBank(c *gin.Context) {
	var req updateSubBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	node, err := h.Service.UpdateSubBank(context.Background(), c.Param("id"), c.Param("subBankId"), req.Name, req.ExamIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if node == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sub-bank not found"})
		return
	}
	c.JSON(http.StatusOK, node)
}
