package img
import (
	"fmt"
	"image"

	"clairvoyant/stegano/util"
)

/*
 * the shared LSB core. every raster codec works on a flat pixel buffer:
 * per-channel byte intensities, row-major, channel-interleaved,
 * 3 channels, no alpha. only the least significant bit of each byte
 * belongs to the codec, the upper 7 bits are never touched.
 */

// FlattenRGB converts a decoded image into its flat RGB byte buffer.
func FlattenRGB( m image.Image ) []uint8 {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf := make( []uint8, 0, width * height * 3 )
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := m.At( x, y ).RGBA()
			buf = append( buf, uint8(r >> 8), uint8(g >> 8), uint8(b >> 8) )
		}
	}
	return buf
}

// BufferToImage rebuilds an opaque NRGBA image from a flat RGB buffer.
func BufferToImage( buf []uint8, width, height int ) *image.NRGBA {
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := m.PixOffset( x, y )
			m.Pix[off] = buf[i]
			m.Pix[off+1] = buf[i+1]
			m.Pix[off+2] = buf[i+2]
			m.Pix[off+3] = 0xff
			i += 3
		}
	}
	return m
}

// EmbedInBuffer writes the framed payload bit by bit into consecutive
// buffer byte LSBs starting at index 0, header bits first.
func EmbedInBuffer( pixelBytes []uint8, framed []byte ) error {
	bits := util.BytesToBits( framed )
	if len(bits) > len(pixelBytes) {
		return fmt.Errorf("%w ( %d bits > %d slots )",
			util.ErrPayloadTooLarge, len(bits), len(pixelBytes) )
	}
	for i, bit := range bits {
		pixelBytes[i] = (pixelBytes[i] & 0xfe) | bit
	}
	return nil
}

// ExtractFromBuffer recovers a framed payload embedded by EmbedInBuffer.
// a garbage length from a decoy that never carried a message is surfaced
// as a bounds error, never as a read past the buffer.
func ExtractFromBuffer( pixelBytes []uint8 ) ([]byte, error) {

	if len(pixelBytes) < util.HeaderBits {
		return nil, fmt.Errorf("Image is too small to carry a header ( %d slots )", len(pixelBytes) )
	}
	headerBits := make( []uint8, util.HeaderBits )
	for i := 0; i < util.HeaderBits; i++ {
		headerBits[i] = pixelBytes[i] & 1
	}
	length, err := util.PayloadLength( headerBits )
	if err != nil {
		return nil, err
	}

	totalBits := uint64(length) * 8
	if util.HeaderBits + totalBits > uint64(len(pixelBytes)) {
		return nil, fmt.Errorf("Declared payload of %d bytes does not fit the image", length )
	}

	bits := make( []uint8, totalBits )
	for i := uint64(0); i < totalBits; i++ {
		bits[i] = pixelBytes[util.HeaderBits + i] & 1
	}
	return util.BitsToBytes( bits ), nil
}

// BufferCapacity is the byte capacity of a flat RGB buffer after
// header overhead. zero if negative.
func BufferCapacity( totalBits int ) int {
	usableBits := totalBits - util.HeaderBits
	if usableBits < 0 {
		return 0
	}
	return usableBits / 8
}
