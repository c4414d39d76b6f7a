package img
import (
	"fmt"
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	_ "image/png"
	_ "golang.org/x/image/bmp"

	"lukechampine.com/jsteg"

	"clairvoyant/stegano/util"
)

func isGif( decoy []byte ) bool {
	return len(decoy) > 3 && decoy[0] == 0x47 && decoy[1] == 0x49 && decoy[2] == 0x46
}

func isPng( decoy []byte ) bool {
	return len(decoy) > 8 &&
		decoy[0] == 0x89 && decoy[1] == 0x50 && decoy[2] == 0x4e &&
		decoy[3] == 0x47 && decoy[4] == 0x0d && decoy[5] == 0x0a &&
		decoy[6] == 0x1a && decoy[7] == 0x0a
}

func isJpeg( decoy []byte ) bool {
	return len(decoy) > 3 && decoy[0] == 0xff && decoy[1] == 0xd8 && decoy[2] == 0xff
}

func isBmp( decoy []byte ) bool {
	return len(decoy) > 2 && decoy[0] == 0x42 && decoy[1] == 0x4d
}

func Hide( decoy, data []byte ) ([]byte, error) {
	if isGif( decoy ) {
		return HideInGif( decoy, data )
	}
	if isPng( decoy ) {
		return HideInPNG( decoy, data )
	}
	if isJpeg( decoy ) {
		return HideInJpeg( decoy, data )
	}
	if isBmp( decoy ) {
		return HideInBMP( decoy, data )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

func Reveal( decoy []byte ) ([]byte, error) {
	if isGif( decoy ) {
		return RevealFromGif( decoy )
	}
	if isPng( decoy ) {
		return RevealFromPNG( decoy )
	}
	if isJpeg( decoy ) {
		return RevealFromJpeg( decoy )
	}
	if isBmp( decoy ) {
		return RevealFromBMP( decoy )
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

// Capacity reports how many payload bytes the decoy can carry,
// after header overhead. advisory, checked again on embed.
func Capacity( decoy []byte ) (int, error) {
	if isGif( decoy ) {
		g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, err
		}
		totalBits := 0
		for _, frame := range g.Image {
			totalBits += len(frame.Pix)
		}
		return BufferCapacity( totalBits ), nil
	}
	if isJpeg( decoy ) {
		m, err := jpeg.Decode( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, err
		}
		capacity := jsteg.Capacity( m, nil ) - util.HeaderSize
		if capacity < 0 {
			capacity = 0
		}
		return capacity, nil
	}
	if isPng( decoy ) || isBmp( decoy ) {
		cfg, _, err := image.DecodeConfig( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, err
		}
		return BufferCapacity( cfg.Width * cfg.Height * 3 ), nil
	}
	return 0, fmt.Errorf("Unsupported image format.")
}
