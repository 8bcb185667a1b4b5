package drawbot

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// saveMP4 rasterizes all pages into a temp directory and hands them to
// ffmpeg, as DrawBot does. The frame rate comes from the frame-rate export
// option, or failing that from the document's frame duration.
func (d *RecordingDocument) saveMP4(path string, o exportOptions) error {
	tmpDir, err := os.MkdirTemp("", "drawbot-mp4-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	for i, pic := range d.pictures {
		rc := renderPicture(pic)
		frame := filepath.Join(tmpDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(frame, rc.dc); err != nil {
			return err
		}
	}

	fps := o.frameRate
	if fps <= 0 {
		fps = 1 / d.durations[0]
	}

	args := []string{
		"-y",
		"-framerate", fmt.Sprintf("%g", fps),
		"-i", filepath.Join(tmpDir, "frame_%04d.png"),
		"-c:v", o.codec,
		"-pix_fmt", "yuv420p",
		// yuv420p requires even dimensions
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		path,
	}
	Logger().Debug("running ffmpeg", "path", o.ffmpegPath, "args", args)

	cmd := exec.Command(o.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("drawbot: ffmpeg failed: %w: %s", err, stderr.String())
	}
	Logger().Info("wrote mp4", "path", path, "frames", len(d.pictures), "fps", fps)
	return nil
}
