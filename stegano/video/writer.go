package video
import (
	"fmt"
	"strings"

	"gocv.io/x/gocv"

	"clairvoyant/stegano/util"
)

/*
 * the fallback path when no frame-processing tool is available:
 * decode frames with gocv and write them back through a VideoWriter,
 * trying the input's own codec first, then a fixed list of
 * lossless-or-near-lossless candidates.
 */
var fallbackCodecs = []string{ "FFV1", "MJPG", "XVID", "mp4v" }

func fourccString( prop float64 ) string {
	code := uint32( int64(prop) )
	chars := make( []byte, 4 )
	for i := 0; i < 4; i++ {
		chars[i] = byte( (code >> (8 * uint(i))) & 0xff )
	}
	for _, c := range chars {
		if c < 0x20 || c > 0x7e {
			return ""
		}
	}
	return strings.TrimSpace( string(chars) )
}

func openWriter( output string, codecs []string, fps float64, width, height int ) (*gocv.VideoWriter, string) {
	for _, c := range codecs {
		writer, err := gocv.VideoWriterFile( output, c, fps, width, height, true )
		if err == nil && writer.IsOpened() {
			return writer, c
		}
		if writer != nil {
			writer.Close()
		}
	}
	return nil, ""
}

func hideWithWriter( input, output string, data []byte ) error {

	capture, err := gocv.VideoCaptureFile( input )
	if err != nil {
		return fmt.Errorf("%w: %s cannot be opened", util.ErrInputNotFound, input )
	}
	defer capture.Close()

	fps := capture.Get( gocv.VideoCaptureFPS )
	if fps <= 0 {
		fps = 25.0
	}
	width := int(capture.Get( gocv.VideoCaptureFrameWidth ))
	height := int(capture.Get( gocv.VideoCaptureFrameHeight ))

	framed, err := util.Frame( data )
	if err != nil {
		return err
	}
	bits := util.BytesToBits( framed )

	// pre-check before the output is opened for writing, so a
	// rejected embed leaves no partial file behind
	frameCount := int64(capture.Get( gocv.VideoCaptureFrameCount ))
	if totalSlots := frameCount * int64(width) * int64(height) * 3; totalSlots > 0 && int64(len(bits)) > totalSlots {
		return fmt.Errorf("%w ( %d bits > %d slots )", util.ErrPayloadTooLarge, len(bits), totalSlots )
	}

	// try to reuse the input fourcc if possible
	preferred := []string{}
	if guess := fourccString( capture.Get( gocv.VideoCaptureFOURCC ) ); guess != "" {
		preferred = append( preferred, guess )
	}
	preferred = append( preferred, fallbackCodecs... )

	writer, _ := openWriter( output, preferred, fps, width, height )
	if writer == nil {
		return fmt.Errorf("%w ( tried %v )", util.ErrWriterUnavailable, preferred )
	}
	defer writer.Close()

	bitIdx := 0

	frame := gocv.NewMat()
	defer frame.Close()
	for {
		if ok := capture.Read( &frame ); !ok || frame.Empty() {
			break
		}
		if bitIdx < len(bits) {
			flat, err := frame.DataPtrUint8()
			if err != nil {
				return err
			}
			maxModify := len(flat)
			if remaining := len(bits) - bitIdx; remaining < maxModify {
				maxModify = remaining
			}
			for i := 0; i < maxModify; i++ {
				flat[i] = (flat[i] & 0xfe) | bits[bitIdx]
				bitIdx++
			}
		}
		if err = writer.Write( frame ); err != nil {
			return err
		}
	}

	if bitIdx < len(bits) {
		return fmt.Errorf("%w ( decoy video is too short )", util.ErrPayloadTooLarge )
	}
	return nil
}

func revealWithReader( input string ) ([]byte, error) {

	capture, err := gocv.VideoCaptureFile( input )
	if err != nil {
		return nil, fmt.Errorf("%w: %s cannot be opened", util.ErrInputNotFound, input )
	}
	defer capture.Close()

	headerBits := make( []uint8, 0, util.HeaderBits )
	var payloadBits []uint8
	var totalPayloadBits uint64
	haveLength := false

	frame := gocv.NewMat()
	defer frame.Close()
	for {
		if ok := capture.Read( &frame ); !ok || frame.Empty() {
			break
		}
		flat, err := frame.DataPtrUint8()
		if err != nil {
			return nil, err
		}
		for _, b := range flat {
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
	return []byte{}, nil
}
