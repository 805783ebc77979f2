package video

import (
	"context"
	"fmt"
	"image"
	"io"
	"log"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	ffprobe "gopkg.in/vansante/go-ffprobe.v2"

	"github.com/AndrewDonelson/caption-studio/pkg/render"
)

// Source is a probed input video. Width and Height are the display
// dimensions after any rotation metadata is applied; storedWidth and
// storedHeight are the dimensions frames arrive in on the wire.
type Source struct {
	Path     string
	Width    int
	Height   int
	Duration float64
	Rotation int
	HasAudio bool

	storedWidth  int
	storedHeight int
}

// Open probes a video file with ffprobe. An unreadable or stream-less file
// is a fatal error carrying the path.
func Open(ctx context.Context, path string) (*Source, error) {
	data, err := ffprobe.ProbeURL(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to probe video %s: %w", path, err)
	}

	vs := data.FirstVideoStream()
	if vs == nil {
		return nil, fmt.Errorf("no video stream in %s", path)
	}

	rotation := int(vs.Tags.Rotate)
	width, height := render.RotatedDims(vs.Width, vs.Height, rotation)

	src := &Source{
		Path:         path,
		Width:        width,
		Height:       height,
		Duration:     data.Format.DurationSeconds,
		Rotation:     rotation,
		HasAudio:     data.FirstAudioStream() != nil,
		storedWidth:  vs.Width,
		storedHeight: vs.Height,
	}

	log.Printf("Probed %s: %dx%d, %.2fs, rotation=%d, audio=%v",
		path, src.Width, src.Height, src.Duration, src.Rotation, src.HasAudio)
	return src, nil
}

// Frames decodes the video into raw RGBA frames at the given frame rate.
// Frames arrive in presentation order on the returned channel, already
// counter-rotated to display orientation. The error channel receives at
// most one value after the frame channel closes; nil means clean EOF.
func (s *Source) Frames(ctx context.Context, fps int) (<-chan image.Image, <-chan error) {
	frames := make(chan image.Image, 2)
	errc := make(chan error, 1)

	pr, pw := io.Pipe()

	// Decoder: rotation is applied in-process, so the stream is pulled in
	// stored orientation.
	go func() {
		err := ffmpeg.Input(s.Path, ffmpeg.KwArgs{"noautorotate": ""}).
			Output("pipe:", ffmpeg.KwArgs{
				"format":  "rawvideo",
				"pix_fmt": "rgba",
				"r":       fps,
				"an":      "",
			}).
			WithOutput(pw).
			Run()
		pw.CloseWithError(err)
	}()

	go func() {
		defer close(frames)

		frameSize := s.storedWidth * s.storedHeight * 4
		for {
			buf := make([]byte, frameSize)
			if _, err := io.ReadFull(pr, buf); err != nil {
				if err == io.EOF {
					errc <- nil
				} else {
					errc <- fmt.Errorf("failed to decode frames from %s: %w", s.Path, err)
				}
				return
			}

			img := &image.NRGBA{
				Pix:    buf,
				Stride: s.storedWidth * 4,
				Rect:   image.Rect(0, 0, s.storedWidth, s.storedHeight),
			}

			select {
			case frames <- render.Rotate(img, s.Rotation):
			case <-ctx.Done():
				pr.CloseWithError(ctx.Err())
				errc <- ctx.Err()
				return
			}
		}
	}()

	return frames, errc
}
