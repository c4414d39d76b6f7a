package stegano
import (
	"os"
	"fmt"
	"strings"
	"path/filepath"

	"clairvoyant/stegano/img"
	"clairvoyant/stegano/util"
	"clairvoyant/stegano/video"
)

/*
 * top-level dispatch between the supported media and strategies.
 * images are small enough to handle as byte slices, videos are
 * always addressed by path.
 */
const (
	VideoModeAppend = "append"
	VideoModeLSB = "lsb"
)

var (
	imageExtensions = []string{ "png", "bmp", "gif", "jpg", "jpeg" }
	videoExtensions = []string{ "mp4", "avi", "mkv", "mov", "webm" }
)

type Options struct {
	// VideoModeAppend or VideoModeLSB; images ignore this
	VideoMode	string

	// frame-LSB capacity knob
	BitsPerChannel	int

	// scratch root for per-frame images
	ScratchDir	string

	// frame-processing collaborator, nil selects the fallback writer
	Tool		video.FrameTool
}

func hasExtension( path string, extensions []string ) bool {
	ext := strings.TrimPrefix( strings.ToLower( filepath.Ext( path ) ), "." )
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func IsImageFile( path string ) bool {
	return hasExtension( path, imageExtensions )
}

func IsVideoFile( path string ) bool {
	return hasExtension( path, videoExtensions )
}

func(o Options) lsbOptions() video.LSBOptions {
	return video.LSBOptions{
		BitsPerChannel: o.BitsPerChannel,
		ScratchRoot: o.ScratchDir,
		Tool: o.Tool,
	}
}

func EmbedFile( input, output string, payload []byte, opts Options ) error {

	if IsImageFile( input ) {
		decoy, err := os.ReadFile( input )
		if err != nil {
			return fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
		}
		result, err := img.Hide( decoy, payload )
		if err != nil {
			return err
		}
		return os.WriteFile( output, result, 0660 )
	}

	if IsVideoFile( input ) {
		if opts.VideoMode == VideoModeLSB {
			return video.HideWithLSB( input, output, payload, opts.lsbOptions() )
		}
		return video.HideAppended( input, output, payload )
	}

	return fmt.Errorf("Unsupported file type: %s", input )
}

func ExtractFile( input string, opts Options ) ([]byte, error) {

	if IsImageFile( input ) {
		decoy, err := os.ReadFile( input )
		if err != nil {
			return nil, fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
		}
		return img.Reveal( decoy )
	}

	if IsVideoFile( input ) {
		if opts.VideoMode == VideoModeLSB {
			return video.RevealWithLSB( input, opts.lsbOptions() )
		}
		return video.RevealAppended( input )
	}

	return nil, fmt.Errorf("Unsupported file type: %s", input )
}

// EstimateCapacity reports the advisory payload capacity in bytes for
// the chosen medium and strategy. never enforced by extractors.
func EstimateCapacity( input string, opts Options ) (int64, error) {

	if IsImageFile( input ) {
		decoy, err := os.ReadFile( input )
		if err != nil {
			return 0, fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
		}
		capacity, err := img.Capacity( decoy )
		return int64(capacity), err
	}

	if IsVideoFile( input ) {
		if opts.VideoMode == VideoModeLSB {
			return video.EstimateLSBCapacity( input, opts.BitsPerChannel ), nil
		}
		return video.EstimateAppendCapacity( input ), nil
	}

	return 0, fmt.Errorf("Unsupported file type: %s", input )
}
