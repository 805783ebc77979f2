package worker

import (
	"context"
	"log"
	"time"

	"github.com/AndrewDonelson/caption-studio/config"
	"github.com/AndrewDonelson/caption-studio/internal/database"
	"github.com/AndrewDonelson/caption-studio/internal/models"
	"github.com/AndrewDonelson/caption-studio/internal/services"
)

// Worker processes queued conversion jobs
type Worker struct {
	jobRepo      *database.JobRepository
	broadcaster  *services.ProgressBroadcaster
	processor    *Processor
	pollInterval time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
}

// NewWorker creates a new job worker
func NewWorker(
	jobRepo *database.JobRepository,
	broadcaster *services.ProgressBroadcaster,
	cfg *config.Config,
	pollInterval time.Duration,
) *Worker {
	processor := NewProcessor(jobRepo, broadcaster, cfg)
	ctx, cancel := context.WithCancel(context.Background())

	return &Worker{
		jobRepo:      jobRepo,
		broadcaster:  broadcaster,
		processor:    processor,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins processing jobs
func (w *Worker) Start() {
	log.Println("Job worker started")

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start
	w.processNext()

	// Then process on interval
	for {
		select {
		case <-w.ctx.Done():
			log.Println("Job worker stopped")
			return
		case <-ticker.C:
			w.processNext()
		}
	}
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	log.Println("Stopping job worker...")
	w.cancel()
}

// processNext processes the next pending job
func (w *Worker) processNext() {
	// Get next pending job
	job, err := w.jobRepo.GetNextPending()
	if err != nil {
		log.Printf("Error getting next pending job: %v", err)
		return
	}

	if job == nil {
		// No jobs to process
		return
	}

	log.Printf("Processing job %d (%s)", job.ID, job.VideoPath)

	// Mark as processing
	now := time.Now()
	job.Status = models.StatusProcessing
	job.StartedAt = &now
	job.Progress = 0
	job.CurrentStep = "Starting"
	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Error updating job: %v", err)
		return
	}

	// Broadcast start
	w.broadcaster.BroadcastFromJob(job, "Processing started")

	// Process the job
	if err := w.processor.Process(w.ctx, job); err != nil {
		log.Printf("Error processing job %d: %v", job.ID, err)
		w.failJob(job, err.Error())
		return
	}

	// Mark as completed
	completed := time.Now()
	job.Status = models.StatusCompleted
	job.CompletedAt = &completed
	job.Progress = 100
	job.CurrentStep = "Completed"
	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Error updating completed job: %v", err)
		return
	}

	// Broadcast completion
	w.broadcaster.BroadcastFromJob(job, "Processing completed successfully")
	log.Printf("Job %d completed successfully", job.ID)
}

// failJob marks a job as failed
func (w *Worker) failJob(job *models.Job, errorMsg string) {
	job.Status = models.StatusFailed
	job.ErrorMessage = errorMsg
	job.RetryCount++
	completed := time.Now()
	job.CompletedAt = &completed

	if err := w.jobRepo.Update(job); err != nil {
		log.Printf("Error updating failed job: %v", err)
		return
	}

	w.broadcaster.BroadcastFromJob(job, "Processing failed")
	log.Printf("Job %d failed: %s", job.ID, errorMsg)
}
