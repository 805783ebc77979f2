package video

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/AndrewDonelson/caption-studio/pkg/caption"
	"github.com/AndrewDonelson/caption-studio/pkg/render"
	"github.com/AndrewDonelson/caption-studio/pkg/subtitle"
)

// Options configures one conversion.
type Options struct {
	VideoPath    string
	SubtitlePath string
	OutputPath   string

	Style       caption.StyleSpec
	FitMode     render.FitMode
	ProgressBar bool
	FPS         int

	// OnProgress, when set, receives the current step name and overall
	// percent as the conversion advances.
	OnProgress func(step string, percent int)
}

// captionAnchorY is where chip centers sit vertically, as a fraction of
// the canvas height.
const captionAnchorY = 0.75

// progressBarColor is the fill of the playback progress segment.
var progressBarColor = color.RGBA{255, 255, 255, 255}

// Convert runs the full pipeline: probe the video, parse the subtitles,
// render every caption chip, then stream fitted, composited frames into
// the encoder with the source audio passed through. Encode progress is
// reported per frame through Options.OnProgress.
func Convert(ctx context.Context, opts Options) error {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	report := opts.OnProgress
	if report == nil {
		report = func(string, int) {}
	}

	// Every return path must tear the frame decoder down, not just the
	// caller's context.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report("Probing source", 1)
	src, err := Open(ctx, opts.VideoPath)
	if err != nil {
		return err
	}

	report("Parsing subtitles", 4)
	cues, err := subtitle.ParseFile(opts.SubtitlePath)
	if err != nil {
		return err
	}
	log.Printf("Parsed %d cues from %s", len(cues), opts.SubtitlePath)

	report("Rendering captions", 8)
	timeline := render.NewTimeline(render.CanvasWidth, render.CanvasHeight)
	for _, layer := range CaptionLayers(cues, opts.Style) {
		timeline.Add(layer)
	}
	if opts.ProgressBar {
		bar := render.NewProgressBar(render.CanvasWidth, render.CanvasHeight,
			src.Duration, progressBarColor, 220)
		timeline.Add(bar.Layer())
	}
	log.Printf("Timeline ready: %d layers, fit=%s", timeline.LayerCount(), opts.FitMode)

	audioPath := ""
	if src.HasAudio {
		audioPath = src.Path
	}
	encOpts := DefaultEncodeOptions(opts.OutputPath, render.CanvasWidth, render.CanvasHeight, opts.FPS)
	encOpts.AudioPath = audioPath
	enc := NewEncoder(encOpts)

	report("Encoding", 12)
	totalFrames := int(src.Duration * float64(opts.FPS))
	if totalFrames < 1 {
		totalFrames = 1
	}

	frames, errc := src.Frames(ctx, opts.FPS)
	written := 0
	for frame := range frames {
		t := float64(written) / float64(opts.FPS)
		fitted := render.FitFrame(frame, render.CanvasWidth, render.CanvasHeight, opts.FitMode)
		out := timeline.Composite(fitted, t)

		if err := enc.WriteFrame(out); err != nil {
			enc.Abort(err)
			return err
		}
		written++

		if written%opts.FPS == 0 || written == totalFrames {
			percent := 12 + 88*written/totalFrames
			if percent > 99 {
				percent = 99
			}
			report("Encoding", percent)
		}
	}

	if err := <-errc; err != nil {
		enc.Abort(err)
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	report("Completed", 100)
	log.Printf("✓ Converted %s -> %s (%d frames)", opts.VideoPath, opts.OutputPath, written)
	return nil
}

// CaptionLayers renders one chip per cue and positions it: horizontally
// centered, vertically anchored in the lower third of the canvas. Cue
// windows carry over verbatim; degenerate cues produce layers that are
// simply never visible.
func CaptionLayers(cues []subtitle.Cue, style caption.StyleSpec) []render.Layer {
	if len(cues) == 0 {
		return nil
	}

	renderer := caption.NewRenderer(style)
	anchorY := int(float64(render.CanvasHeight) * captionAnchorY)

	layers := make([]render.Layer, 0, len(cues))
	for _, cue := range cues {
		chip := renderer.Render(cue.Text)
		layers = append(layers, render.Layer{
			Image: chip.Image,
			X:     (render.CanvasWidth - chip.Width) / 2,
			Y:     anchorY - chip.Height/2,
			Start: cue.Start,
			End:   cue.End,
		})
	}
	return layers
}

// String implements a compact description of the options for logs.
func (o Options) String() string {
	return fmt.Sprintf("video=%s subs=%s out=%s fit=%s fps=%d progress=%v",
		o.VideoPath, o.SubtitlePath, o.OutputPath, o.FitMode, o.FPS, o.ProgressBar)
}
