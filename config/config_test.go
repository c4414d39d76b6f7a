package config
import (
	"testing"
	"path/filepath"

	"clairvoyant/util"
)

func TestSaveAndLoadConfig( t *testing.T ) {
	conf := FullConfig{
		Stegano: SteganoConfig{
			FFmpegPath: "/usr/bin/ffmpeg",
			VideoMode: "lsb",
			BitsPerChannel: 1,
			ScratchDir: "/tmp",
		},
		Logger: util.LoggerInfo{
			Filename: "test.log",
			Mode: util.Error,
		},
	}

	filename := filepath.Join( t.TempDir(), "config.yml" )
	if err := SaveConfig( filename, "", &conf ); err != nil {
		t.Errorf("Failed to save configuration: %s", err.Error())
	}
	conf2, err := LoadConfig( filename, "" )
	if err != nil {
		t.Fatalf("Failed to load configuration: %s", err.Error())
	}
	if conf.Stegano != conf2.Stegano || conf.Logger != conf2.Logger {
		t.Errorf("[CRITICAL] Configuration was changed during save/load process")
	}
}

func TestSaveAndLoadEncryptedConfig( t *testing.T ) {
	conf := DefaultConfig( "log.log" )
	conf.Stegano.VideoMode = "append"

	filename := filepath.Join( t.TempDir(), "config.enc" )
	password := "test-password"
	if err := SaveConfig( filename, password, conf ); err != nil {
		t.Errorf("Failed to save configuration: %s", err.Error())
	}

	conf2, err := LoadConfig( filename, password )
	if err != nil {
		t.Fatalf("Failed to load configuration: %s", err.Error())
	}
	if conf2.Stegano.VideoMode != "append" {
		t.Errorf("Configuration was changed during encryption/decryption process")
	}

	// wrong password must not yield a configuration
	if _, err = LoadConfig( filename, "wrong" ); err == nil {
		t.Errorf("Expected an error for a wrong password")
	}
}
