package config

import (
	"os"
	"gopkg.in/yaml.v3"

	"clairvoyant/util"
	"clairvoyant/cryptography"
)

/*
 * Configuration for steganography. Controls which video strategy is used
 * by default and where the frame-processing tool lives.
 */
type SteganoConfig struct {
	// explicit path to the ffmpeg binary. empty means autodetect
	// (bundled assets folder first, then $PATH).
	FFmpegPath	string	`yaml:"ffmpeg_path"`

	// "append" or "lsb"
	VideoMode	string	`yaml:"video_mode"`

	// capacity-estimate knob for frame-LSB mode. the embedder always
	// writes a single LSB per byte.
	BitsPerChannel	int	`yaml:"bits_per_channel"`

	// scratch directory root for per-frame images. empty means the
	// system temp directory.
	ScratchDir	string	`yaml:"scratch_dir"`
}

/*
 * Full configuration of the application.
 */
type FullConfig struct {
	Stegano		SteganoConfig	`yaml:"steganography_config"`
	Logger		util.LoggerInfo	`yaml:"logger_config"`
}

func DefaultConfig( logFile string ) *FullConfig {
	return &FullConfig{
		Stegano: SteganoConfig{
			FFmpegPath: "",
			VideoMode: "append",
			BitsPerChannel: 1,
			ScratchDir: "",
		},
		Logger: util.LoggerInfo{
			Filename: logFile,
			Password: "",
			IsEncrypted: false,
			IsColored: true,
			SaveTime: true,
			Mode: util.Error | util.Warning,
		},
	}
}

/*
 * Functions for loading and saving configuration in YAML format.
 */
func LoadConfig(filename string, password string) (*FullConfig, error) {
	data, err := LoadEncrypted(filename, password)
	if err != nil {
		return nil, err
	}

	var conf FullConfig
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func SaveConfig(filename string, password string, c *FullConfig) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return SaveEncrypted(filename, password, data)
}

/*
 * Functions for saving and loading optionally encrypted files.
 */
func LoadEncrypted(filename string, password string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if password != "" {
		return cryptography.DecryptWithPassword(data, password)
	}
	// return unencrypted data
	return data, nil
}

func SaveEncrypted(filename string, password string, data []byte) error {

	var err error
	if password != "" {
		data, err = cryptography.EncryptWithPassword(data, password)
		if err != nil {
			return err
		}
	}
	return os.WriteFile(filename, data, 0600)
}
