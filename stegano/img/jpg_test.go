package img
import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"math/rand"
	"testing"
)

func makeJpeg( t *testing.T, width, height int ) []byte {
	t.Helper()
	rnd := rand.New( rand.NewSource( 1 ) )
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set( x, y, color.NRGBA{
				uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), uint8(rnd.Intn(256)), 255,
			} )
		}
	}
	buf := new(bytes.Buffer)
	if err := jpeg.Encode( buf, m, nil ); err != nil {
		t.Fatalf("Failed to encode test jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestJpegRoundtrip( t *testing.T ) {
	decoy := makeJpeg( t, 256, 256 )
	data := []byte("Hello from the DCT domain")

	capacity, err := Capacity( decoy )
	if err != nil {
		t.Fatalf("Failed to estimate capacity: %v", err)
	}
	if capacity < len(data) {
		t.Skipf("test jpeg too small: capacity %d", capacity)
	}

	enc, err := HideInJpeg( decoy, data )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}
	dec, err := RevealFromJpeg( enc )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if bytes.Equal( data, dec ) == false {
		t.Errorf("Steganography spoiled the data. %q != %q", data, dec)
	}
}
