package handlers

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/AndrewDonelson/caption-studio/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadHandler handles file upload requests
type UploadHandler struct{}

// NewUploadHandler creates a new upload handler
func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// allowed upload extensions by form field
var uploadExtensions = map[string]map[string]bool{
	"video":     {".mp4": true, ".mov": true, ".mkv": true, ".webm": true},
	"subtitles": {".srt": true},
}

// Upload accepts a source video and/or subtitle file and stores them under
// the uploads directory. The returned paths feed directly into job creation.
func (h *UploadHandler) Upload(c *gin.Context) {
	uploadDir := filepath.Join(utils.GetUploadsPath(), uuid.NewString())
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create storage directory: " + err.Error()})
		return
	}

	savedPaths := make(map[string]string)

	for _, field := range []string{"video", "subtitles"} {
		file, header, err := c.Request.FormFile(field)
		if err != nil {
			continue
		}
		defer file.Close()

		ext := filepath.Ext(header.Filename)
		if !uploadExtensions[field][ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported " + field + " file type: " + ext})
			return
		}

		destPath := filepath.Join(uploadDir, field+ext)
		destFile, err := os.Create(destPath)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save " + field + " file: " + err.Error()})
			return
		}
		defer destFile.Close()

		if _, err := io.Copy(destFile, file); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write " + field + " file: " + err.Error()})
			return
		}

		savedPaths[field] = destPath
	}

	if len(savedPaths) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided. Include 'video' and/or 'subtitles' in the form data."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Files uploaded successfully",
		"uploaded_paths": savedPaths,
	})
}
