package util
import (
	"errors"
)

/*
 * error taxonomy shared by all embedding modes.
 * codecs wrap these with context so callers can match via errors.Is.
 */
var (
	// source path is missing or unreadable
	ErrInputNotFound = errors.New("input file does not exist")

	// checked before any destructive write; a rejected embed
	// never leaves a partially written output file
	ErrPayloadTooLarge = errors.New("payload is too large for this decoy")

	// the frame-processing collaborator produced no frames
	ErrFrameExtraction = errors.New("no frames were extracted from video")

	// the frame-processing collaborator exited with an error
	ErrCollaborator = errors.New("frame processing tool failed")

	// none of the fallback video writers could be opened
	ErrWriterUnavailable = errors.New("no usable video writer")
)
