package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndavydov/storefront/internal/adapter/oss"
	"github.com/ndavydov/storefront/internal/server/http/dto"
)

// maxUploadMemory caps the in-memory part of multipart parsing; larger files
// spill to temp storage.
const maxUploadMemory = 32 << 20

// UploadHandler accepts multipart batches and forwards each file straight to
// object storage.
type UploadHandler struct {
	facade UploadFacade
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(facade UploadFacade) *UploadHandler {
	return &UploadHandler{facade: facade}
}

// Policy handles POST /api/file/policy. The admin UI calls it as soon as a
// file is picked, so the signed policy is already cached when the upload
// itself starts.
func (h *UploadHandler) Policy(c *gin.Context) {
	var req dto.PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file_name required"})
		return
	}

	if err := h.facade.PrefetchUploadPolicy(c.Request.Context(), currentToken(c), req.FileName); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Upload handles POST /api/file/upload. Files are taken from the "files"
// multipart field and uploaded one by one; a failure of one file does not
// abort the rest of the batch.
func (h *UploadHandler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadMemory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form expected"})
		return
	}
	headers := c.Request.MultipartForm.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files supplied"})
		return
	}

	files := make([]oss.File, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file " + header.Filename})
			return
		}
		opened = append(opened, f)
		files = append(files, oss.File{Name: header.Filename, Content: f})
	}

	results := h.facade.UploadFiles(c.Request.Context(), currentToken(c), files)

	resp := dto.UploadResponse{Results: make([]dto.UploadResult, 0, len(results))}
	for _, r := range results {
		item := dto.UploadResult{Name: r.Name, URL: r.URL}
		if r.Err != nil {
			item.Error = r.Err.Error()
			resp.Failed++
		}
		resp.Results = append(resp.Results, item)
	}
	c.JSON(http.StatusOK, resp)
}
