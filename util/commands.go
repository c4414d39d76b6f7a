package util
import (
	"os"
	"fmt"
	"os/exec"
	"strings"
	"strconv"
	"path/filepath"
	"encoding/base64"

	"clairvoyant/cryptography"
)

const (
	TextEditor = "/usr/bin/vi"
	TextEditorVariableName = "CLAIRVOYANT_EDITOR"
)

/*
 * user-facing maintenance commands, so nobody has to do the
 * decrypt-edit-encrypt dance by hand.
 */
func EditConfig( conf string, password string ) error {

	te := TextEditor	// setup default text editor
	for _, variable := range os.Environ() {
		parts := strings.SplitN( variable, "=", 2 )
		if len(parts) == 2 && parts[0] == TextEditorVariableName {
			te = parts[1]
			break
		}
	}

	data, err := os.ReadFile( conf )
	if err != nil {
		return fmt.Errorf("Failed to read configuration: %s", err.Error() )
	}

	pt := data
	if password != "" {
		pt, err = cryptography.DecryptWithPassword( data, password )
		if err != nil {
			return fmt.Errorf("Failed to decrypt configuration: %s", err.Error() + "; Invalid password?")
		}
	}

	// write it into temporary file
	tempFile := filepath.Join( os.TempDir(), fmt.Sprintf("tmp-%d", RandInt( 10000 ) ) )
	if err = os.WriteFile( tempFile, pt, 0660 ); err != nil {
		return fmt.Errorf("Failed to write into temporary file: %s", err.Error())
	}
	defer ShredFile( tempFile )	// not to forget to securely delete file

	cmd := exec.Command( te, tempFile )
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return fmt.Errorf("Failed to edit file using %v: %s", te, err.Error())
	}

	// file was edited fine
	pt, err = os.ReadFile( tempFile )
	if err != nil {
		return fmt.Errorf("Failed to read temporary file: %s", err.Error())
	}

	if password != "" {
		pt, err = cryptography.EncryptWithPassword( pt, password )
		if err != nil {
			return err
		}
	}
	return os.WriteFile( conf, pt, 0660 )
}

func ReadLog( log string, password string ) error {

	data, err := os.ReadFile( log )
	if err != nil {
		return fmt.Errorf("Failed to read file: %s", err.Error())
	}

	logs, err := cryptography.DecryptWithPassword( data, password )
	if err != nil {
		// logs are unencrypted? checking for plaintext
		strLogs := string(data)
		for _, run := range strLogs {
			if strconv.IsPrint( run ) == false && run != '\n' && run != '\t' {
				return fmt.Errorf("Failed to decrypt logs: invalid password.")
			}
		}
		fmt.Println( strLogs )
		return nil
	}
	fmt.Println( string(logs) )
	return nil
}

// GenSalt prints a fresh random salt, base64-encoded, for use in
// external key derivation setups.
func GenSalt() error {
	saltBytes, err := cryptography.GenRandom( cryptography.SaltSize )
	if err != nil {
		return err
	}
	fmt.Println("[+] Generated salt:", base64.StdEncoding.EncodeToString( saltBytes ))
	return nil
}
