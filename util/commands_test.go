package util
import (
	"io"
	"os"
	"strings"
	"testing"
	"encoding/base64"

	"clairvoyant/cryptography"
)

func TestGenSalt( t *testing.T ) {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	genErr := GenSalt()
	w.Close()
	os.Stdout = old

	if genErr != nil {
		t.Fatalf("Failed to generate salt: %v", genErr)
	}

	out, err := io.ReadAll( r )
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	fields := strings.Fields( string(out) )
	if len(fields) == 0 {
		t.Fatalf("No salt was printed")
	}

	salt, err := base64.StdEncoding.DecodeString( fields[len(fields) - 1] )
	if err != nil {
		t.Fatalf("Printed salt is not valid base64: %v", err)
	}
	if len(salt) != cryptography.SaltSize {
		t.Errorf("Expected a %d-byte salt, got %d bytes", cryptography.SaltSize, len(salt))
	}
}
