package video
import (
	"os"
	"fmt"
	"bytes"
	"image"
	"image/png"

	"clairvoyant/stegano/img"
	"clairvoyant/stegano/util"
)

/*
 * frame-LSB mode: payload bits go into the least significant bits of
 * decoded frame pixels, continuing across frame boundaries as a single
 * running offset into the virtual concatenation of all frame buffers.
 * an ffmpeg collaborator guarantees a lossless round trip; without one
 * the gocv writer path in writer.go is used instead.
 */
type LSBOptions struct {
	// capacity-estimate knob only; the embedder writes one LSB per byte
	BitsPerChannel	int

	// root for per-frame scratch directories, "" means system temp.
	// every call gets a fresh directory, never shared.
	ScratchRoot	string

	// the frame-processing collaborator. nil selects the fallback
	// writer path.
	Tool		FrameTool
}

func HideWithLSB( input, output string, data []byte, opts LSBOptions ) error {

	if _, err := os.Stat( input ); err != nil {
		return fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
	}

	if opts.Tool == nil {
		return hideWithWriter( input, output, data )
	}

	// capacity pre-check. a zero estimate means the probe could not
	// open the video, the in-frame exhaustion guard still applies.
	capacity := EstimateLSBCapacity( input, opts.BitsPerChannel )
	if capacity > 0 && int64(len(data)) > capacity {
		return fmt.Errorf("%w ( %d > %d bytes )", util.ErrPayloadTooLarge, len(data), capacity )
	}

	scratch, err := os.MkdirTemp( opts.ScratchRoot, "clairvoyant-" )
	if err != nil {
		return err
	}
	defer os.RemoveAll( scratch )

	frames, err := opts.Tool.ExtractFrames( input, scratch )
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("%w: %s", util.ErrFrameExtraction, input )
	}

	fps := 25.0
	if p, err := ProbeVideo( input ); err == nil {
		fps = p.FPS
	}

	framed, err := util.Frame( data )
	if err != nil {
		return err
	}
	if err = hideInFrameFiles( frames, util.BytesToBits( framed ) ); err != nil {
		return err
	}

	return opts.Tool.AssembleVideo( scratch, fps, input, output )
}

func RevealWithLSB( input string, opts LSBOptions ) ([]byte, error) {

	if _, err := os.Stat( input ); err != nil {
		return nil, fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
	}

	if opts.Tool == nil {
		return revealWithReader( input )
	}

	scratch, err := os.MkdirTemp( opts.ScratchRoot, "clairvoyant-" )
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll( scratch )

	frames, err := opts.Tool.ExtractFrames( input, scratch )
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return []byte{}, nil
	}
	return revealFromFrameFiles( frames )
}

// write payload bits into consecutive pixel byte LSBs across the frame
// files, re-encoding each modified frame in place.
func hideInFrameFiles( frames []string, bits []uint8 ) error {

	bitIdx := 0
	for _, fp := range frames {
		if bitIdx >= len(bits) {
			break
		}

		raw, err := os.ReadFile( fp )
		if err != nil {
			return err
		}
		m, _, err := image.Decode( bytes.NewReader( raw ) )
		if err != nil {
			return err
		}

		bounds := m.Bounds()
		pixelBytes := img.FlattenRGB( m )

		maxModify := len(pixelBytes)
		if remaining := len(bits) - bitIdx; remaining < maxModify {
			maxModify = remaining
		}
		for i := 0; i < maxModify; i++ {
			pixelBytes[i] = (pixelBytes[i] & 0xfe) | bits[bitIdx]
			bitIdx++
		}

		out := new(bytes.Buffer)
		if err = png.Encode( out, img.BufferToImage( pixelBytes, bounds.Dx(), bounds.Dy() ) ); err != nil {
			return err
		}
		if err = os.WriteFile( fp, out.Bytes(), 0660 ); err != nil {
			return err
		}
	}

	// should not happen after the pre-check, but must be guarded
	if bitIdx < len(bits) {
		return fmt.Errorf("%w ( frames exhausted after %d of %d bits )",
			util.ErrPayloadTooLarge, bitIdx, len(bits) )
	}
	return nil
}

// symmetric to hideInFrameFiles: accumulate the 32 header bits, then
// exactly length*8 payload bits, returning as soon as they are complete
// without decoding the remaining frames.
func revealFromFrameFiles( frames []string ) ([]byte, error) {

	headerBits := make( []uint8, 0, util.HeaderBits )
	var payloadBits []uint8
	var totalPayloadBits uint64
	haveLength := false

	for _, fp := range frames {
		raw, err := os.ReadFile( fp )
		if err != nil {
			return nil, err
		}
		m, _, err := image.Decode( bytes.NewReader( raw ) )
		if err != nil {
			return nil, err
		}

		for _, b := range img.FlattenRGB( m ) {
			bit := b & 1
			if !haveLength {
				headerBits = append( headerBits, bit )
				if len(headerBits) == util.HeaderBits {
					length, err := util.PayloadLength( headerBits )
					if err != nil {
						return nil, err
					}
					if length == 0 {
						return []byte{}, nil
					}
					totalPayloadBits = uint64(length) * 8
					payloadBits = make( []uint8, 0, totalPayloadBits )
					haveLength = true
				}
			} else {
				payloadBits = append( payloadBits, bit )
				if uint64(len(payloadBits)) >= totalPayloadBits {
					return util.BitsToBytes( payloadBits ), nil
				}
			}
		}
	}
	// frames ran out before the declared payload was collected
	return []byte{}, nil
}
