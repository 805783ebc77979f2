package video

import (
	"fmt"
	"image"
	"io"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// EncodeOptions configures the output encode.
type EncodeOptions struct {
	OutputPath string
	Width      int
	Height     int
	FPS        int

	// AudioPath names the file whose audio track is carried through
	// unmodified into the output. Empty produces a silent video.
	AudioPath string

	Preset       string
	CRF          int
	AudioBitrate string
	Threads      int
}

// DefaultEncodeOptions mirrors the encode settings used everywhere else in
// the pipeline: medium preset, CRF 23, 192k AAC audio.
func DefaultEncodeOptions(outputPath string, w, h, fps int) EncodeOptions {
	return EncodeOptions{
		OutputPath:   outputPath,
		Width:        w,
		Height:       h,
		FPS:          fps,
		Preset:       "medium",
		CRF:          23,
		AudioBitrate: "192k",
	}
}

// Encoder accepts composited RGBA frames one at a time and pipes them into
// an ffmpeg H.264 encode, muxing in the source audio when configured.
type Encoder struct {
	opts      EncodeOptions
	pw        *io.PipeWriter
	done      chan error
	frameSize int
}

// NewEncoder starts the encode process. The caller must WriteFrame for
// every output frame in order and then Close.
func NewEncoder(opts EncodeOptions) *Encoder {
	pr, pw := io.Pipe()

	videoIn := ffmpeg.Input("pipe:", ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", opts.Width, opts.Height),
		"r":       opts.FPS,
	})

	outArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"preset":  opts.Preset,
		"crf":     opts.CRF,
		"r":       opts.FPS,
	}
	if opts.Threads > 0 {
		outArgs["threads"] = opts.Threads
	}

	var stream *ffmpeg.Stream
	if opts.AudioPath != "" {
		outArgs["c:a"] = "aac"
		outArgs["b:a"] = opts.AudioBitrate
		outArgs["shortest"] = ""
		audioIn := ffmpeg.Input(opts.AudioPath)
		stream = ffmpeg.Output([]*ffmpeg.Stream{videoIn, audioIn.Audio()}, opts.OutputPath, outArgs)
	} else {
		stream = videoIn.Output(opts.OutputPath, outArgs)
	}

	enc := &Encoder{
		opts:      opts,
		pw:        pw,
		done:      make(chan error, 1),
		frameSize: opts.Width * opts.Height * 4,
	}

	go func() {
		err := stream.OverWriteOutput().WithInput(pr).Run()
		// Poison the pipe so pending and future WriteFrames fail with the
		// run error instead of blocking on a dead encoder.
		pr.CloseWithError(err)
		enc.done <- err
	}()

	return enc
}

// WriteFrame sends one composited frame to the encoder. The frame must be
// exactly the configured canvas size.
func (e *Encoder) WriteFrame(frame *image.RGBA) error {
	if len(frame.Pix) != e.frameSize {
		return fmt.Errorf("frame buffer is %d bytes, expected %d (%dx%d RGBA)",
			len(frame.Pix), e.frameSize, e.opts.Width, e.opts.Height)
	}
	if _, err := e.pw.Write(frame.Pix); err != nil {
		return fmt.Errorf("failed to write frame to encoder: %w", err)
	}
	return nil
}

// Close finishes the frame stream and waits for ffmpeg to produce the
// output file.
func (e *Encoder) Close() error {
	e.pw.Close()
	if err := <-e.done; err != nil {
		return fmt.Errorf("ffmpeg encode of %s failed: %w", e.opts.OutputPath, err)
	}
	return nil
}

// Abort tears the encode down after a mid-stream failure; the partial
// output file is not valid.
func (e *Encoder) Abort(reason error) {
	e.pw.CloseWithError(reason)
	<-e.done
}
