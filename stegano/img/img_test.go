package img
import (
	"bytes"
	"image/color"
	"testing"
)

func TestDispatchByMagic( t *testing.T ) {
	data := []byte("dispatch me")

	decoys := map[string][]byte{
		"png": makePNG( t, 32, 32, color.NRGBA{10, 20, 30, 255} ),
		"bmp": makeBMP( t, 32, 32 ),
		"gif": makeGif( t, 2, 32, 32 ),
	}

	for format, decoy := range decoys {
		enc, err := Hide( decoy, data )
		if err != nil {
			t.Errorf("%s: failed to hide: %v", format, err)
			continue
		}
		dec, err := Reveal( enc )
		if err != nil {
			t.Errorf("%s: failed to reveal: %v", format, err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("%s: steganography spoiled the data. %v != %v", format, data, dec)
		}
	}

	if _, err := Hide( []byte("not an image at all"), data ); err == nil {
		t.Errorf("Expected an error for an unsupported format")
	}
}

func TestCapacityProperties( t *testing.T ) {
	small := makePNG( t, 10, 10, color.Black )
	large := makePNG( t, 20, 20, color.Black )

	capSmall, err := Capacity( small )
	if err != nil {
		t.Fatalf("Failed to estimate capacity: %v", err)
	}
	capLarge, err := Capacity( large )
	if err != nil {
		t.Fatalf("Failed to estimate capacity: %v", err)
	}

	// deterministic
	again, _ := Capacity( small )
	if again != capSmall {
		t.Errorf("Capacity is not deterministic: %d != %d", again, capSmall)
	}

	// monotonically non-decreasing in pixel count
	if capLarge < capSmall {
		t.Errorf("Capacity decreased with pixel count: %d < %d", capLarge, capSmall)
	}

	// degenerate image yields zero, not negative
	tiny := makePNG( t, 1, 1, color.Black )
	capTiny, err := Capacity( tiny )
	if err != nil {
		t.Fatalf("Failed to estimate capacity: %v", err)
	}
	if capTiny != 0 {
		t.Errorf("Expected zero capacity for a 1x1 image, got %d", capTiny)
	}
}
