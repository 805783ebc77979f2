package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"

	"github.com/AndrewDonelson/caption-studio/pkg/caption"
	"github.com/AndrewDonelson/caption-studio/pkg/render"
	"github.com/AndrewDonelson/caption-studio/pkg/video"
)

func main() {
	var (
		videoPath    = flag.String("video", "", "source video file (required)")
		subtitlePath = flag.String("subs", "", "SRT subtitle file (required)")
		outputPath   = flag.String("out", "output.mp4", "output video file")
		fitMode      = flag.String("fit", "cover", "frame fit mode: cover or blur")
		progressBar  = flag.Bool("progress-bar", false, "overlay a playback progress bar")
		fps          = flag.Int("fps", 30, "output frame rate")
		fontPath     = flag.String("font", "", "TTF font file for captions")
		fontSize     = flag.Float64("font-size", 0, "caption font size in pixels")
	)
	flag.Parse()

	if *videoPath == "" || *subtitlePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: convert -video in.mp4 -subs in.srt [-out out.mp4]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	style := caption.DefaultStyle()
	if *fontPath != "" {
		style.FontPath = *fontPath
	}
	if *fontSize > 0 {
		style.FontSize = *fontSize
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("converting"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)

	opts := video.Options{
		VideoPath:    *videoPath,
		SubtitlePath: *subtitlePath,
		OutputPath:   *outputPath,
		Style:        style,
		FitMode:      render.ParseFitMode(*fitMode),
		ProgressBar:  *progressBar,
		FPS:          *fps,
		OnProgress: func(step string, percent int) {
			bar.Describe(step)
			bar.Set(percent)
		},
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := video.Convert(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr)
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Fprintln(os.Stderr)
	log.Printf("Wrote %s", *outputPath)
}
