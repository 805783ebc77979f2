package services_test

import (
	"strings"
	"testing"
	"time"

	"github.com/AndrewDonelson/caption-studio/internal/models"
	"github.com/AndrewDonelson/caption-studio/internal/services"
)

func TestBroadcastReachesSubscriber(t *testing.T) {
	pb := services.NewProgressBroadcaster()
	client := pb.Subscribe()
	defer pb.Unsubscribe(client)

	pb.Broadcast(services.ProgressUpdate{JobID: 7, Status: "processing", Progress: 42})

	select {
	case update := <-client:
		if update.JobID != 7 || update.Progress != 42 {
			t.Fatalf("unexpected update: %+v", update)
		}
		if update.Timestamp.IsZero() {
			t.Fatal("broadcast did not stamp the update")
		}
	case <-time.After(time.Second):
		t.Fatal("no update received")
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	pb := services.NewProgressBroadcaster()
	client := pb.Subscribe()
	if pb.ClientCount() != 1 {
		t.Fatalf("expected 1 client, got %d", pb.ClientCount())
	}

	pb.Unsubscribe(client)
	if pb.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsubscribe, got %d", pb.ClientCount())
	}
	if _, open := <-client; open {
		t.Fatal("channel still open after unsubscribe")
	}
}

func TestBroadcastFromJobCarriesState(t *testing.T) {
	pb := services.NewProgressBroadcaster()
	client := pb.Subscribe()
	defer pb.Unsubscribe(client)

	job := &models.Job{ID: 3, Status: models.StatusFailed, CurrentStep: "Encoding", Progress: 55, ErrorMessage: "boom"}
	pb.BroadcastFromJob(job, "Processing failed")

	update := <-client
	if update.JobID != 3 || update.Status != models.StatusFailed || update.ErrorMessage != "boom" {
		t.Fatalf("job state lost in broadcast: %+v", update)
	}
	if update.Message != "Processing failed" {
		t.Fatalf("unexpected message: %q", update.Message)
	}
}

func TestFormatSSE(t *testing.T) {
	out := services.FormatSSE(services.ProgressUpdate{JobID: 1, Status: "queued"})
	if !strings.HasPrefix(out, "data: {") || !strings.HasSuffix(out, "\n\n") {
		t.Fatalf("not a valid SSE event: %q", out)
	}
	if !strings.Contains(out, `"job_id":1`) {
		t.Fatalf("payload missing job id: %q", out)
	}
}
