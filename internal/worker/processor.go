package worker

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/AndrewDonelson/caption-studio/config"
	"github.com/AndrewDonelson/caption-studio/internal/database"
	"github.com/AndrewDonelson/caption-studio/internal/models"
	"github.com/AndrewDonelson/caption-studio/internal/services"
	"github.com/AndrewDonelson/caption-studio/pkg/caption"
	"github.com/AndrewDonelson/caption-studio/pkg/logger"
	"github.com/AndrewDonelson/caption-studio/pkg/render"
	"github.com/AndrewDonelson/caption-studio/pkg/video"
)

// Processor handles the actual video conversion pipeline
type Processor struct {
	jobRepo     *database.JobRepository
	broadcaster *services.ProgressBroadcaster
	config      *config.Config
}

// NewProcessor creates a new processor
func NewProcessor(
	jobRepo *database.JobRepository,
	broadcaster *services.ProgressBroadcaster,
	cfg *config.Config,
) *Processor {
	return &Processor{
		jobRepo:     jobRepo,
		broadcaster: broadcaster,
		config:      cfg,
	}
}

// Process executes the full conversion pipeline for one job
func (p *Processor) Process(ctx context.Context, job *models.Job) error {
	log.Printf("Starting conversion pipeline for job %d: %s", job.ID, job.VideoPath)

	// Create render logger
	renderLog, err := logger.NewRenderLogger(p.config.StoragePath, job.ID)
	if err != nil {
		log.Printf("Warning: failed to create render logger: %v", err)
		renderLog = nil // Continue without logging
	}

	if renderLog != nil {
		renderLog.Info("Starting conversion pipeline for: %s", job.VideoPath)
		renderLog.Property("Job ID", job.ID)
		renderLog.Property("Video", job.VideoPath)
		renderLog.Property("Subtitles", job.SubtitlePath)
		renderLog.Property("Fit mode", job.FitMode)
		defer func() {
			if r := recover(); r != nil {
				renderLog.Error("Pipeline panicked: %v", r)
				renderLog.Close(false, fmt.Sprintf("Panic: %v", r))
			}
		}()
	}

	outputPath, err := p.outputPath(job)
	if err != nil {
		if renderLog != nil {
			renderLog.Error("Output path setup failed: %v", err)
			renderLog.Close(false, err.Error())
		}
		return err
	}

	style := caption.DefaultStyle()
	if p.config.FontPath != "" {
		style.FontPath = p.config.FontPath
	}
	if p.config.FontSize > 0 {
		style.FontSize = p.config.FontSize
	}

	fps := job.FPS
	if fps <= 0 {
		fps = p.config.FPS
	}

	opts := video.Options{
		VideoPath:    job.VideoPath,
		SubtitlePath: job.SubtitlePath,
		OutputPath:   outputPath,
		Style:        style,
		FitMode:      render.ParseFitMode(job.FitMode),
		ProgressBar:  job.ProgressBar,
		FPS:          fps,
		OnProgress: func(step string, percent int) {
			job.CurrentStep = step
			job.Progress = percent
			if err := p.jobRepo.Update(job); err != nil {
				log.Printf("Error persisting progress for job %d: %v", job.ID, err)
			}
			p.broadcaster.BroadcastFromJob(job, step)
		},
	}

	if renderLog != nil {
		renderLog.Phase("Convert", opts.String())
	}

	if err := video.Convert(ctx, opts); err != nil {
		if renderLog != nil {
			renderLog.Error("Conversion failed: %v", err)
			renderLog.Close(false, err.Error())
		}
		return fmt.Errorf("conversion failed: %w", err)
	}

	job.OutputPath = outputPath
	if info, err := os.Stat(outputPath); err == nil {
		job.OutputSize = info.Size()
		if renderLog != nil {
			renderLog.Property("Output size", info.Size())
		}
	}
	if err := p.jobRepo.Update(job); err != nil {
		log.Printf("Error persisting output path for job %d: %v", job.ID, err)
	}

	if renderLog != nil {
		renderLog.Success("Output written to %s", outputPath)
		renderLog.Close(true, "Conversion completed")
	}
	return nil
}

// outputPath builds a unique output file path under the outputs directory.
func (p *Processor) outputPath(job *models.Job) (string, error) {
	if err := os.MkdirAll(p.config.OutputsPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create outputs directory: %w", err)
	}

	base := filepath.Base(job.VideoPath)
	name := base[:len(base)-len(filepath.Ext(base))]
	return filepath.Join(p.config.OutputsPath,
		fmt.Sprintf("%s_captioned_%s.mp4", name, uuid.NewString()[:8])), nil
}
