package handlers

import (
	"errors"
	"os"
	"recontrack/internal/services"
	apperrors "recontrack/pkg/errors"
	"recontrack/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SubdomainHandler struct {
	subdomainService services.SubdomainServiceMethods
	ingestService    services.IngestServiceMethods
	logger           *logger.Logger
}

func NewSubdomainHandler(subdomainService services.SubdomainServiceMethods, ingestService services.IngestServiceMethods) *SubdomainHandler {
	return &SubdomainHandler{
		subdomainService: subdomainService,
		ingestService:    ingestService,
		logger:           logger.NewLogger(logrus.InfoLevel),
	}
}

// respondError maps the service error taxonomy onto the boundary: not-found
// sentinels become 404, everything else (conflict, validation, infrastructure)
// becomes a bad request carrying the underlying message.
func respondError(c *gin.Context, err error) {
	if apperrors.IsNotFound(err) || errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(404, gin.H{"error": err.Error()})
		return
	}
	c.JSON(400, gin.H{"error": err.Error()})
}

func (h *SubdomainHandler) GetSubdomain(c *gin.Context) {
	subdomain, err := h.subdomainService.GetSubdomain(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), c.Param("subdomain"))
	if err != nil {
		h.logger.Error("Failed to get subdomain:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, subdomain)
}

func (h *SubdomainHandler) CreateSubdomain(c *gin.Context) {
	var req SubdomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	subdomain, err := h.subdomainService.CreateSubdomain(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), req.Name)
	if err != nil {
		h.logger.Error("Failed to create subdomain:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, subdomain)
}

// UploadSubdomains ingests a line-oriented hostname list. The upload is
// staged to a temp file so a cancelled request never leaves a partial stream
// in the pipeline; the stage file is removed on every path.
func (h *SubdomainHandler) UploadSubdomains(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperrors.NewValidationError("Missing upload file"))
		return
	}
	if fileHeader.Size == 0 {
		respondError(c, apperrors.NewValidationError("Upload file is empty"))
		return
	}

	stage, err := os.CreateTemp("", "recontrack-upload-*")
	if err != nil {
		h.logger.Error("Failed to stage upload:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	stagePath := stage.Name()
	stage.Close()
	defer os.Remove(stagePath)

	if err := c.SaveUploadedFile(fileHeader, stagePath); err != nil {
		h.logger.Error("Failed to stage upload:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	staged, err := os.Open(stagePath)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	defer staged.Close()

	created, err := h.ingestService.Ingest(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), staged)
	if err != nil {
		h.logger.Error("Bulk ingestion failed:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, UploadResponse{Created: created})
}

func (h *SubdomainHandler) UpdateSubdomain(c *gin.Context) {
	var req SubdomainUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	subdomain, err := h.subdomainService.UpdateSubdomain(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), c.Param("subdomain"),
		services.SubdomainUpdate{
			Name:         req.Name,
			IsMainPortal: req.IsMainPortal,
			HasHTTPOpen:  req.HasHTTPOpen,
			IsAlive:      req.IsAlive,
			IPAddress:    req.IPAddress,
			FromAgents:   req.FromAgents,
			Labels:       req.Labels,
		})
	if err != nil {
		h.logger.Error("Failed to update subdomain:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, subdomain)
}

func (h *SubdomainHandler) AddLabel(c *gin.Context) {
	var req LabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed to bind JSON:", logger.Fields{"error": err})
		c.JSON(400, gin.H{"error": "Invalid request payload"})
		return
	}

	subdomain, err := h.subdomainService.AddLabel(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), c.Param("subdomain"), req.Label)
	if err != nil {
		h.logger.Error("Failed to add label:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.JSON(200, subdomain)
}

func (h *SubdomainHandler) DeleteSubdomain(c *gin.Context) {
	err := h.subdomainService.DeleteSubdomain(c.Request.Context(),
		c.Param("target"), c.Param("rootdomain"), c.Param("subdomain"))
	if err != nil {
		h.logger.Error("Failed to delete subdomain:", logger.Fields{"error": err})
		respondError(c, err)
		return
	}
	c.Status(204)
}
