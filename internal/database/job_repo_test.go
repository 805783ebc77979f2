package database_test

import (
	"path/filepath"
	"testing"

	"github.com/AndrewDonelson/caption-studio/internal/database"
	"github.com/AndrewDonelson/caption-studio/internal/models"
)

func newTestRepo(t *testing.T) *database.JobRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database.NewJobRepository(database.DB)
}

func TestJobLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	job := &models.Job{
		Status:       models.StatusQueued,
		VideoPath:    "/tmp/in.mp4",
		SubtitlePath: "/tmp/in.srt",
		FitMode:      "blur",
		ProgressBar:  true,
		FPS:          30,
	}
	if err := repo.Create(job); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.ID == 0 {
		t.Fatal("Create did not assign an ID")
	}

	loaded, err := repo.GetByID(job.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if loaded == nil {
		t.Fatal("job not found after create")
	}
	if loaded.FitMode != "blur" || !loaded.ProgressBar || loaded.FPS != 30 {
		t.Fatalf("job round-trip lost settings: %+v", loaded)
	}

	loaded.Status = models.StatusCompleted
	loaded.Progress = 100
	loaded.OutputPath = "/tmp/out.mp4"
	if err := repo.Update(loaded); err != nil {
		t.Fatalf("Update: %v", err)
	}

	again, err := repo.GetByID(job.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if again.Status != models.StatusCompleted || again.OutputPath != "/tmp/out.mp4" {
		t.Fatalf("update not persisted: %+v", again)
	}

	if err := repo.Delete(job.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := repo.GetByID(job.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if gone != nil {
		t.Fatal("job still present after delete")
	}
}

func TestGetNextPendingHonorsPriority(t *testing.T) {
	repo := newTestRepo(t)

	low := &models.Job{Status: models.StatusQueued, Priority: 1, VideoPath: "a.mp4", SubtitlePath: "a.srt"}
	high := &models.Job{Status: models.StatusQueued, Priority: 5, VideoPath: "b.mp4", SubtitlePath: "b.srt"}
	if err := repo.Create(low); err != nil {
		t.Fatalf("Create low: %v", err)
	}
	if err := repo.Create(high); err != nil {
		t.Fatalf("Create high: %v", err)
	}

	next, err := repo.GetNextPending()
	if err != nil {
		t.Fatalf("GetNextPending: %v", err)
	}
	if next == nil || next.ID != high.ID {
		t.Fatalf("expected high-priority job %d, got %+v", high.ID, next)
	}
}

func TestGetNextPendingEmptyQueue(t *testing.T) {
	repo := newTestRepo(t)

	next, err := repo.GetNextPending()
	if err != nil {
		t.Fatalf("GetNextPending: %v", err)
	}
	if next != nil {
		t.Fatalf("expected nil for empty queue, got %+v", next)
	}
}
