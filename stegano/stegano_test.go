package stegano
import (
	"os"
	"bytes"
	"image"
	"image/color"
	"image/png"
	"errors"
	"testing"
	"path/filepath"

	"clairvoyant/stegano/util"
)

func writePNG( t *testing.T, path string, width, height int ) {
	t.Helper()
	m := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set( x, y, color.NRGBA{ 40, 80, 120, 255 } )
		}
	}
	f, err := os.Create( path )
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err = png.Encode( f, m ); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func TestFileTypeDetection( t *testing.T ) {
	if !IsImageFile("photo.PNG") || !IsImageFile("/a/b/c.jpeg") || IsImageFile("movie.mp4") {
		t.Errorf("Image extension detection is broken")
	}
	if !IsVideoFile("movie.mp4") || !IsVideoFile("clip.MKV") || IsVideoFile("photo.png") {
		t.Errorf("Video extension detection is broken")
	}
}

func TestEmbedExtractImageFile( t *testing.T ) {
	dir := t.TempDir()
	input := filepath.Join( dir, "in.png" )
	output := filepath.Join( dir, "out.png" )
	writePNG( t, input, 48, 48 )

	payload := []byte("file level roundtrip")
	if err := EmbedFile( input, output, payload, Options{} ); err != nil {
		t.Fatalf("Failed to embed: %v", err)
	}
	dec, err := ExtractFile( output, Options{} )
	if err != nil {
		t.Fatalf("Failed to extract: %v", err)
	}
	if bytes.Equal( payload, dec ) == false {
		t.Errorf("Steganography spoiled the data. %q != %q", payload, dec)
	}
}

func TestEmbedExtractVideoAppendFile( t *testing.T ) {
	dir := t.TempDir()
	input := filepath.Join( dir, "in.mp4" )
	output := filepath.Join( dir, "out.mp4" )
	if err := os.WriteFile( input, bytes.Repeat([]byte{3}, 4096), 0660 ); err != nil {
		t.Fatalf("Failed to create test video: %v", err)
	}

	payload := []byte("appended payload")
	opts := Options{ VideoMode: VideoModeAppend }
	if err := EmbedFile( input, output, payload, opts ); err != nil {
		t.Fatalf("Failed to embed: %v", err)
	}
	dec, err := ExtractFile( output, opts )
	if err != nil {
		t.Fatalf("Failed to extract: %v", err)
	}
	if bytes.Equal( payload, dec ) == false {
		t.Errorf("Steganography spoiled the data. %q != %q", payload, dec)
	}

	capacity, err := EstimateCapacity( output, opts )
	if err != nil {
		t.Fatalf("Failed to estimate capacity: %v", err)
	}
	if capacity <= 0 {
		t.Errorf("Expected positive advisory capacity, got %d", capacity)
	}
}

func TestRejectedEmbedLeavesNoOutput( t *testing.T ) {
	dir := t.TempDir()
	input := filepath.Join( dir, "tiny.png" )
	output := filepath.Join( dir, "out.png" )
	writePNG( t, input, 4, 4 )	// 48 slots, 16 after the header

	payload := bytes.Repeat( []byte("x"), 1000 )
	err := EmbedFile( input, output, payload, Options{} )
	if errors.Is( err, util.ErrPayloadTooLarge ) == false {
		t.Fatalf("Expected ErrPayloadTooLarge, got %v", err)
	}
	if _, err := os.Stat( output ); err == nil {
		t.Errorf("A rejected embed left a partially written output file")
	}
}

func TestUnsupportedFileType( t *testing.T ) {
	if err := EmbedFile( "notes.txt", "out.txt", []byte("x"), Options{} ); err == nil {
		t.Errorf("Expected an error for an unsupported file type")
	}
	if _, err := ExtractFile( "notes.txt", Options{} ); err == nil {
		t.Errorf("Expected an error for an unsupported file type")
	}
}

func TestMissingInput( t *testing.T ) {
	missing := filepath.Join( t.TempDir(), "nope.png" )
	if err := EmbedFile( missing, missing + ".out", []byte("x"), Options{} ); errors.Is( err, util.ErrInputNotFound ) == false {
		t.Errorf("Expected ErrInputNotFound, got %v", err)
	}
}
