package database

import (
	"database/sql"

	"github.com/AndrewDonelson/caption-studio/internal/models"
)

const jobColumns = `id, status, priority, video_path, subtitle_path,
	COALESCE(fit_mode, 'cover') as fit_mode,
	COALESCE(progress_bar, 1) as progress_bar,
	COALESCE(fps, 30) as fps,
	COALESCE(current_step, '') as current_step,
	COALESCE(progress, 0) as progress,
	COALESCE(error_message, '') as error_message,
	COALESCE(retry_count, 0) as retry_count,
	COALESCE(output_path, '') as output_path,
	COALESCE(output_size, 0) as output_size,
	queued_at, started_at, completed_at`

// JobRepository handles conversion job database operations
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func scanJob(row interface{ Scan(...interface{}) error }) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID, &job.Status, &job.Priority, &job.VideoPath, &job.SubtitlePath,
		&job.FitMode, &job.ProgressBar, &job.FPS,
		&job.CurrentStep, &job.Progress, &job.ErrorMessage, &job.RetryCount,
		&job.OutputPath, &job.OutputSize,
		&job.QueuedAt, &job.StartedAt, &job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// GetAll returns all jobs, highest priority first
func (r *JobRepository) GetAll() ([]models.Job, error) {
	rows, err := r.db.Query(`SELECT ` + jobColumns + ` FROM jobs ORDER BY priority DESC, queued_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// GetByID returns a job by ID, or nil when it doesn't exist
func (r *JobRepository) GetByID(id int) (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}

// Create inserts a new job and fills in its ID
func (r *JobRepository) Create(job *models.Job) error {
	result, err := r.db.Exec(
		`INSERT INTO jobs (status, priority, video_path, subtitle_path, fit_mode, progress_bar, fps)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		job.Status, job.Priority, job.VideoPath, job.SubtitlePath,
		job.FitMode, job.ProgressBar, job.FPS,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	job.ID = int(id)
	return nil
}

// Update updates an existing job
func (r *JobRepository) Update(job *models.Job) error {
	_, err := r.db.Exec(
		`UPDATE jobs SET status=?, priority=?, current_step=?, progress=?,
		error_message=?, retry_count=?, output_path=?, output_size=?,
		started_at=?, completed_at=?
		WHERE id=?`,
		job.Status, job.Priority, job.CurrentStep, job.Progress,
		job.ErrorMessage, job.RetryCount, job.OutputPath, job.OutputSize,
		job.StartedAt, job.CompletedAt,
		job.ID,
	)
	return err
}

// Delete removes a job
func (r *JobRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM jobs WHERE id=?", id)
	return err
}

// GetNextPending returns the next queued job, or nil when the queue is empty
func (r *JobRepository) GetNextPending() (*models.Job, error) {
	job, err := scanJob(r.db.QueryRow(
		`SELECT `+jobColumns+` FROM jobs WHERE status = ? ORDER BY priority DESC, queued_at ASC LIMIT 1`,
		models.StatusQueued,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return job, nil
}
