package img
import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"
)

func makeBMP( t *testing.T, width, height int ) []byte {
	t.Helper()
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set( x, y, color.NRGBA{ uint8(x * 8), uint8(y * 8), 100, 255 } )
		}
	}
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, m ); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestBMPRoundtrip( t *testing.T ) {
	decoy := makeBMP( t, 32, 32 )

	tests := [][]byte{
		[]byte{},
		[]byte("Hello world!"),
		bytes.Repeat([]byte("A"), 256),
	}

	for _, data := range tests {
		enc, err := HideInBMP( decoy, data )
		if err != nil {
			t.Errorf("Failed to encode data: %v", err)
			continue
		}
		dec, err := RevealFromBMP( enc )
		if err != nil {
			t.Errorf("Failed to extract data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}
}
