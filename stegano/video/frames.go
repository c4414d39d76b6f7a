package video
import (
	"os"
	"fmt"
	"sort"
	"errors"
	"strconv"
	"os/exec"
	"runtime"
	"path/filepath"

	"clairvoyant/stegano/util"
)

/*
 * the frame-processing collaborator. modeled as a narrow interface so
 * the bit-level logic stays testable without ffmpeg being installed:
 * availability is a capability check made once per call, not runtime
 * type dispatch.
 */
const FramePattern = "frame_%06d.png"

type FrameTool interface {
	// decompose a video into an ordered sequence of lossless
	// per-frame images inside dir, returned in increasing index order
	ExtractFrames( video string, dir string ) ([]string, error)

	// reassemble the frame sequence from dir into a single
	// lossless-codec video, copying the audio stream of
	// audioSource unmodified if one is present
	AssembleVideo( dir string, fps float64, audioSource string, output string ) error
}

type FFmpegTool struct {
	Path	string
}

func NewFFmpegTool( path string ) *FFmpegTool {
	return &FFmpegTool{ Path: path }
}

func(t *FFmpegTool) ExtractFrames( video string, dir string ) ([]string, error) {
	pattern := filepath.Join( dir, FramePattern )
	cmd := exec.Command( t.Path, "-y", "-i", video, "-vsync", "0", pattern )
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrCollaborator, err )
	}

	frames, err := filepath.Glob( filepath.Join( dir, "frame_*.png" ) )
	if err != nil {
		return nil, err
	}
	sort.Strings( frames )
	return frames, nil
}

func(t *FFmpegTool) AssembleVideo( dir string, fps float64, audioSource string, output string ) error {
	args := []string{
		"-y",
		"-framerate", strconv.FormatFloat( fps, 'f', 3, 64 ),
		"-i", filepath.Join( dir, FramePattern ),
		"-i", audioSource,
		"-map", "0:v",
		"-map", "1:a?",
		"-c:v", "ffv1",
		"-c:a", "copy",
		output,
	}
	cmd := exec.Command( t.Path, args... )
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v", util.ErrCollaborator, err )
	}
	return nil
}

/*
 * locate an ffmpeg binary. priority:
 * 1. bundled binary under assets/ffmpeg/<platform>/ffmpeg next to
 *    the executable or the working directory
 * 2. ffmpeg on $PATH
 * an empty result is a valid state, it selects the fallback writer.
 */
func FindFFmpeg() string {

	plat := "linux"
	exeName := "ffmpeg"
	switch runtime.GOOS {
	case "windows":
		plat = "windows"
		exeName = "ffmpeg.exe"
	case "darwin":
		plat = "macos"
	}

	bases := []string{}
	if self, err := os.Executable(); err == nil {
		bases = append( bases, filepath.Dir( self ) )
	}
	if cwd, err := os.Getwd(); err == nil {
		bases = append( bases, cwd )
	}

	for _, base := range bases {
		candidate := filepath.Join( base, "assets", "ffmpeg", plat, exeName )
		if _, err := os.Stat( candidate ); err == nil {
			if runtime.GOOS != "windows" {
				os.Chmod( candidate, 0755 )
			}
			return candidate
		}
	}

	path, err := exec.LookPath( "ffmpeg" )
	if errors.Is( err, exec.ErrDot ) {
		err = nil
	}
	if err != nil {
		return ""
	}
	return path
}
