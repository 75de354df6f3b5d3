package handlers

import (
	"recontrack/internal/services"
	"recontrack/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TargetHandler struct {
	targetService services.TargetServiceMethods
	logger        *logger.Logger
}

func NewTargetHandler(targetService services.TargetServiceMethods) *TargetHandler {
	return &TargetHandler{targetService: targetService, logger: logger.NewLogger(logrus.InfoLevel)}
}

func (h *TargetHandler) CreateTarget(c *gin.Context) {
	var req TargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	target, err := h.targetService.CreateTarget(c.Request.Context(), services.TargetCreate{
		Name:                req.Name,
		BugBountyProgramURL: req.BugBountyProgramURL,
		InScope:             req.InScope,
		OutOfScope:          req.OutOfScope,
		IsPrivate:           req.IsPrivate,
	})
	if err != nil {
		h.logger.Error("Failed to create target:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, target)
}

func (h *TargetHandler) GetTarget(c *gin.Context) {
	target, err := h.targetService.GetTarget(c.Request.Context(), c.Param("target"))
	if err != nil {
		h.logger.Error("Failed to get target:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, target)
}

func (h *TargetHandler) ListTargets(c *gin.Context) {
	targets, err := h.targetService.ListTargets(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list targets:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, targets)
}

func (h *TargetHandler) DeleteTarget(c *gin.Context) {
	if err := h.targetService.DeleteTarget(c.Request.Context(), c.Param("target")); err != nil {
		h.logger.Error("Failed to delete target:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.Status(204)
}

func (h *TargetHandler) CreateRootDomain(c *gin.Context) {
	var req RootDomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	rootDomain, err := h.targetService.CreateRootDomain(c.Request.Context(), c.Param("target"), req.Name)
	if err != nil {
		h.logger.Error("Failed to create root domain:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, rootDomain)
}

func (h *TargetHandler) ExportTarget(c *gin.Context) {
	doc, err := h.targetService.ExportTarget(c.Request.Context(), c.Param("target"))
	if err != nil {
		h.logger.Error("Failed to export target:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.Data(200, "application/x-yaml", doc)
}
