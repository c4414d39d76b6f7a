package img
import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

func makeGif( t *testing.T, frames, width, height int ) []byte {
	t.Helper()

	// even-sized palette so an LSB write can never leave the palette
	palette := make( color.Palette, 0, 256 )
	for i := 0; i < 256; i++ {
		palette = append( palette, color.Gray{ uint8(i) } )
	}

	g := &gif.GIF{}
	for f := 0; f < frames; f++ {
		frame := image.NewPaletted( image.Rect( 0, 0, width, height ), palette )
		for i := range frame.Pix {
			frame.Pix[i] = uint8( (i + f * 16) % 256 )
		}
		g.Image = append( g.Image, frame )
		g.Delay = append( g.Delay, 10 )
	}

	buf := new(bytes.Buffer)
	if err := gif.EncodeAll( buf, g ); err != nil {
		t.Fatalf("Failed to encode test gif: %v", err)
	}
	return buf.Bytes()
}

func TestGifRoundtrip( t *testing.T ) {
	decoy := makeGif( t, 3, 24, 24 )

	tests := [][]byte{
		[]byte{},
		[]byte("Hello world!"),
		bytes.Repeat([]byte("g"), 128),
	}

	for _, data := range tests {
		enc, err := HideInGif( decoy, data )
		if err != nil {
			t.Errorf("Failed to encode data: %v", err)
			continue
		}
		dec, err := RevealFromGif( enc )
		if err != nil {
			t.Errorf("Failed to extract data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestGifUsableIndex( t *testing.T ) {
	// in an odd palette the top index has no pair partner
	if usableIndex( 4, 5 ) {
		t.Errorf("Index 4 of a 5-color palette must not carry a bit")
	}
	if !usableIndex( 3, 5 ) || !usableIndex( 0, 5 ) {
		t.Errorf("Paired indices of a 5-color palette must carry a bit")
	}
	if !usableIndex( 254, 256 ) || !usableIndex( 255, 256 ) {
		t.Errorf("A full palette must leave every index usable")
	}
}

func TestGifOddPalette( t *testing.T ) {
	// a 5-color source palette is padded to 8 entries on encode; after
	// embedding, every index must still be inside the decoded palette
	palette := make( color.Palette, 0, 5 )
	for i := 0; i < 5; i++ {
		palette = append( palette, color.Gray{ uint8(i * 50) } )
	}

	g := &gif.GIF{}
	frame := image.NewPaletted( image.Rect( 0, 0, 48, 48 ), palette )
	for i := range frame.Pix {
		frame.Pix[i] = uint8( i % 5 )
	}
	g.Image = append( g.Image, frame )
	g.Delay = append( g.Delay, 10 )

	buf := new(bytes.Buffer)
	if err := gif.EncodeAll( buf, g ); err != nil {
		t.Fatalf("Failed to encode test gif: %v", err)
	}

	data := []byte("odd palette")
	enc, err := HideInGif( buf.Bytes(), data )
	if err != nil {
		t.Fatalf("Failed to encode data: %v", err)
	}

	// every index must still be inside the palette
	g2, err := gif.DecodeAll( bytes.NewReader( enc ) )
	if err != nil {
		t.Fatalf("Embedding produced an undecodable gif: %v", err)
	}
	for _, f := range g2.Image {
		for _, pix := range f.Pix {
			if int(pix) >= len(f.Palette) {
				t.Fatalf("Index %d escaped the %d-color palette", pix, len(f.Palette))
			}
		}
	}

	dec, err := RevealFromGif( enc )
	if err != nil {
		t.Fatalf("Failed to extract data: %v", err)
	}
	if bytes.Equal( data, dec ) == false {
		t.Errorf("Steganography spoiled the data. %q != %q", data, dec)
	}
}

func TestGifTooSmall( t *testing.T ) {
	decoy := makeGif( t, 1, 8, 8 )
	// 64 index slots, header alone needs 32, so 100 bytes can never fit
	if _, err := HideInGif( decoy, bytes.Repeat([]byte("x"), 100) ); err == nil {
		t.Errorf("Expected an error for an oversized payload")
	}
}
