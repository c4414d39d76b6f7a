package util
import (
	"os"
	"errors"
	"os/exec"
	"crypto/rand"
	"golang.org/x/text/unicode/norm"
)

const (
	ShredingCount = 10
)

// messages typed by the user are normalized so the embedded
// bytes do not depend on the input method's unicode form
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

func ShredFile( filename string ) error {

	fileInfo, err := os.Stat( filename )
	if err != nil {
		return err
	}

	buf := make( []byte, fileInfo.Size() )
	for i := 0; i < ShredingCount; i++ {
		// just generate random bytes and write them as file content.
		if _, err := rand.Read( buf ); err != nil {
			return err
		}
		if err = os.WriteFile( filename, buf, 0660 ); err != nil {
			return err
		}
	}
	return os.Remove( filename )
}

func PathToProgram( prog string ) (string, error) {
	path, err := exec.LookPath( prog )
	if errors.Is(err, exec.ErrDot) {
		err = nil
	}
	return path, err
}
