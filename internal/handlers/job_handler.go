package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/AndrewDonelson/caption-studio/internal/database"
	"github.com/AndrewDonelson/caption-studio/internal/models"
	"github.com/AndrewDonelson/caption-studio/internal/services"
	"github.com/gin-gonic/gin"
)

// JobHandler handles conversion job requests
type JobHandler struct {
	repo        *database.JobRepository
	broadcaster *services.ProgressBroadcaster
}

// NewJobHandler creates a new job handler
func NewJobHandler(repo *database.JobRepository, broadcaster *services.ProgressBroadcaster) *JobHandler {
	return &JobHandler{
		repo:        repo,
		broadcaster: broadcaster,
	}
}

// GetAll returns all jobs
func (h *JobHandler) GetAll(c *gin.Context) {
	jobs, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// GetByID returns a job by ID
func (h *JobHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	job, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// Create queues a new conversion job
func (h *JobHandler) Create(c *gin.Context) {
	var req struct {
		VideoPath    string `json:"video_path" binding:"required"`
		SubtitlePath string `json:"subtitle_path" binding:"required"`
		FitMode      string `json:"fit_mode"`
		ProgressBar  bool   `json:"progress_bar"`
		FPS          int    `json:"fps"`
		Priority     int    `json:"priority"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := os.Stat(req.VideoPath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video file not found: " + req.VideoPath})
		return
	}
	if _, err := os.Stat(req.SubtitlePath); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Subtitle file not found: " + req.SubtitlePath})
		return
	}

	job := &models.Job{
		Status:       models.StatusQueued,
		Priority:     req.Priority,
		VideoPath:    req.VideoPath,
		SubtitlePath: req.SubtitlePath,
		FitMode:      req.FitMode,
		ProgressBar:  req.ProgressBar,
		FPS:          req.FPS,
	}

	if err := h.repo.Create(job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Broadcast job creation
	h.broadcaster.BroadcastFromJob(job, "Job queued")

	c.JSON(http.StatusCreated, job)
}

// Update updates a job
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job.ID = id
	if err := h.repo.Update(&job); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Broadcast job update
	h.broadcaster.BroadcastFromJob(&job, "Job updated")

	c.JSON(http.StatusOK, job)
}

// Delete removes a job
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	// Get the job first to broadcast cancellation
	job, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}

	// Delete from database
	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Broadcast cancellation
	h.broadcaster.BroadcastFromJob(job, "Job cancelled")

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}

// GetNext returns the next pending job
func (h *JobHandler) GetNext(c *gin.Context) {
	job, err := h.repo.GetNextPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if job == nil {
		c.JSON(http.StatusOK, gin.H{"job": nil, "message": "No pending jobs"})
		return
	}

	c.JSON(http.StatusOK, job)
}
