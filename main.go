package main
import (
	"os"
	"fmt"
	"flag"
	"errors"
	"strings"
	"path/filepath"

	"clairvoyant/util"
	"clairvoyant/config"
	"clairvoyant/stegano"
	"clairvoyant/cryptography"
	"clairvoyant/stegano/video"
)

const (
	ClairvoyantFolder = ".clairvoyant"
	ConfigFilename = "config.yml"
	LogFilename = "log.log"
)

func main() {

	if len( os.Args ) < 2 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal("Failed to get home directory:", err)
	}
	appFolder := filepath.Join( home, ClairvoyantFolder )
	if _, err = os.Stat( appFolder ); err != nil {
		if err = os.Mkdir( appFolder, 0760 ); err != nil {
			fatal("Failed to create clairvoyant directory in user's home folder:", err)
		}
	}

	// if the application runs for the first time, write the defaults
	configFile := filepath.Join( appFolder, ConfigFilename )
	if _, err := os.Stat( configFile ); err != nil {
		conf := config.DefaultConfig( filepath.Join( appFolder, LogFilename ) )
		if err = config.SaveConfig( configFile, "", conf ); err != nil {
			fatal("Failed to save default configuration:", err)
		}
	}

	conf, err := config.LoadConfig( configFile, "" )
	if err != nil {
		fatal("Failed to load configuration:", err)
	}
	logger := util.NewLogger( &conf.Logger )

	switch os.Args[1] {
	case "embed":
		if err = embedCommand( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			fatal("Failed to embed:", err)
		}
	case "extract":
		if err = extractCommand( conf, logger, os.Args[2:] ); err != nil {
			logger.LogError( err )
			fatal("Failed to extract:", err)
		}
	case "capacity":
		if err = capacityCommand( conf, os.Args[2:] ); err != nil {
			fatal("Failed to estimate capacity:", err)
		}
	case "editconf":
		if err = util.EditConfig( configFile, "" ); err != nil {
			fatal("Failed to edit configuration:", err)
		}
	case "readlog":
		if err = util.ReadLog( conf.Logger.Filename, conf.Logger.Password ); err != nil {
			fatal("Failed to read log file:", err)
		}
	case "gensalt":
		if err = util.GenSalt(); err != nil {
			fatal("Failed to generate salt:", err)
		}
	default:
		help()
	}
}

// pick the frame-processing tool once per invocation.
// nil means "not installed", selecting the fallback writer path.
func frameTool( conf *config.FullConfig, logger *util.Logger ) video.FrameTool {
	path := conf.Stegano.FFmpegPath
	if path != "" && !strings.ContainsRune( path, os.PathSeparator ) {
		if resolved, err := util.PathToProgram( path ); err == nil && resolved != "" {
			path = resolved
		}
	}
	if path == "" {
		path = video.FindFFmpeg()
	}
	if path == "" {
		logger.LogWarning("ffmpeg not found, using the fallback video writer")
		return nil
	}
	util.DebugPrintln("using ffmpeg at", path)
	return video.NewFFmpegTool( path )
}

func options( conf *config.FullConfig, mode string, tool video.FrameTool ) stegano.Options {
	if mode == "" {
		mode = conf.Stegano.VideoMode
	}
	return stegano.Options{
		VideoMode: mode,
		BitsPerChannel: conf.Stegano.BitsPerChannel,
		ScratchDir: conf.Stegano.ScratchDir,
		Tool: tool,
	}
}

func embedCommand( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	cmd := flag.NewFlagSet( "embed", flag.ExitOnError )
	input := cmd.String( "in", "", "decoy image or video file (required)" )
	output := cmd.String( "out", "", "output destination, derived from the input when omitted" )
	text := cmd.String( "text", "", "text message to embed" )
	payloadFile := cmd.String( "payload", "", "file to embed instead of a text message" )
	encrypt := cmd.Bool( "encrypt", false, "encrypt the payload with a passphrase" )
	mode := cmd.String( "mode", "", "video strategy: append or lsb (default from config)" )
	cmd.Parse( args )

	if *input == "" {
		cmd.PrintDefaults()
		os.Exit(2)
	}

	var payload []byte
	var err error
	if *payloadFile != "" {
		payload, err = os.ReadFile( *payloadFile )
		if err != nil {
			return err
		}
	} else {
		payload = []byte( util.FixUnicode( *text ) )
	}

	if *encrypt {
		password, err := util.GetPasswd("Passphrase: ")
		if err != nil {
			return err
		}
		payload, err = cryptography.EncryptWithPassword( payload, string(password) )
		if err != nil {
			return err
		}
	}

	out := *output
	if out == "" {
		ext := strings.TrimPrefix( filepath.Ext( *input ), "." )
		out = filepath.Join( filepath.Dir( *input ), util.GenFilename( "stego-", ext ) )
	}

	opts := options( conf, *mode, frameTool( conf, logger ) )
	if err = stegano.EmbedFile( *input, out, payload, opts ); err != nil {
		return err
	}
	logger.LogInfo("embedded " + *input + " -> " + out)
	fmt.Println("Saved:", out)
	return nil
}

func extractCommand( conf *config.FullConfig, logger *util.Logger, args []string ) error {

	cmd := flag.NewFlagSet( "extract", flag.ExitOnError )
	input := cmd.String( "in", "", "stego-bearing image or video file (required)" )
	output := cmd.String( "out", "", "write the payload to this file instead of stdout" )
	decrypt := cmd.Bool( "decrypt", false, "decrypt the payload with a passphrase" )
	mode := cmd.String( "mode", "", "video strategy: append or lsb (default from config)" )
	cmd.Parse( args )

	if *input == "" {
		cmd.PrintDefaults()
		os.Exit(2)
	}

	opts := options( conf, *mode, frameTool( conf, logger ) )
	payload, err := stegano.ExtractFile( *input, opts )
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		fmt.Println("No hidden message found.")
		return nil
	}

	if *decrypt {
		password, err := util.GetPasswd("Passphrase: ")
		if err != nil {
			return err
		}
		plaintext, err := cryptography.DecryptWithPassword( payload, string(password) )
		if err != nil {
			// the payload may simply never have been encrypted;
			// show the raw bytes but never a partial decryption
			if errors.Is( err, cryptography.ErrAuthenticationFailed ) ||
				errors.Is( err, cryptography.ErrInvalidEnvelope ) {
				fmt.Fprintln( os.Stderr, "Warning: decryption failed, showing raw payload" )
			} else {
				return err
			}
		} else {
			payload = plaintext
		}
	}

	if *output != "" {
		return os.WriteFile( *output, payload, 0660 )
	}
	fmt.Println( string(payload) )
	return nil
}

func capacityCommand( conf *config.FullConfig, args []string ) error {

	cmd := flag.NewFlagSet( "capacity", flag.ExitOnError )
	input := cmd.String( "in", "", "image or video file (required)" )
	mode := cmd.String( "mode", "", "video strategy: append or lsb (default from config)" )
	cmd.Parse( args )

	if *input == "" {
		cmd.PrintDefaults()
		os.Exit(2)
	}

	opts := options( conf, *mode, nil )
	capacity, err := stegano.EstimateCapacity( *input, opts )
	if err != nil {
		return err
	}
	fmt.Printf("Estimated capacity: %d bytes\n", capacity)
	return nil
}

func fatal( args ...any ) {
	fmt.Println( args... )
	os.Exit(-1)
}

func help() {
	line := `Usage: ./clairvoyant <command> [arguments]

The following commands are supported:
	embed		hide a message or file inside an image/video
	extract		recover a hidden message from an image/video
	capacity	estimate how many bytes a decoy can carry
	editconf	edit configuration
	readlog		read log file
	gensalt		generate a random base64-encoded salt
`
	fmt.Printf("%s", line)
}
