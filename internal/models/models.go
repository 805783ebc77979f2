package models

import "time"

// Job represents one conversion: a source video plus a subtitle track to be
// rendered into a vertical captioned video.
type Job struct {
	ID       int    `json:"id" db:"id"`
	Status   string `json:"status" db:"status"`
	Priority int    `json:"priority" db:"priority"`

	// Inputs
	VideoPath    string `json:"video_path" db:"video_path"`
	SubtitlePath string `json:"subtitle_path" db:"subtitle_path"`

	// Render settings
	FitMode     string `json:"fit_mode" db:"fit_mode"`         // cover, blur
	ProgressBar bool   `json:"progress_bar" db:"progress_bar"` // bottom progress overlay
	FPS         int    `json:"fps" db:"fps"`

	// Processing state
	CurrentStep  string `json:"current_step" db:"current_step"`
	Progress     int    `json:"progress" db:"progress"`
	ErrorMessage string `json:"error_message" db:"error_message"`
	RetryCount   int    `json:"retry_count" db:"retry_count"`

	// Output
	OutputPath string `json:"output_path" db:"output_path"`
	OutputSize int64  `json:"output_size" db:"output_size"`

	QueuedAt    time.Time  `json:"queued_at" db:"queued_at"`
	StartedAt   *time.Time `json:"started_at" db:"started_at"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
}

// Job status constants
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
