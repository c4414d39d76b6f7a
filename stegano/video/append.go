package video
import (
	"os"
	"io"
	"fmt"
	"bytes"
	"encoding/binary"

	"clairvoyant/stegano/util"
)

/*
 * append mode never touches the video stream itself: the envelope
 * marker || length(4, BE) || payload
 * goes verbatim after the file's existing bytes, so the message
 * survives whatever codec the host video uses.
 */
var Marker = []byte("CLRV1")

const (
	// how much of the file's tail is searched for the marker
	MaxTailWindow = 10 * 1024 * 1024

	// reserved header/footer space for the advisory capacity estimate
	appendReserved = 1024
)

func HideAppended( input, output string, data []byte ) error {

	in, err := os.Open( input )
	if err != nil {
		return fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
	}
	defer in.Close()

	framed, err := util.Frame( data )
	if err != nil {
		return err
	}

	out, err := os.Create( output )
	if err != nil {
		return err
	}
	defer out.Close()

	// copy file and append envelope
	if _, err = io.Copy( out, in ); err != nil {
		return err
	}
	if _, err = out.Write( Marker ); err != nil {
		return err
	}
	_, err = out.Write( framed )
	return err
}

// RevealAppended returns the last appended payload, or empty bytes when
// no marker is present. "no hidden message" is not an error here.
func RevealAppended( input string ) ([]byte, error) {

	fi, err := os.Stat( input )
	if err != nil {
		return nil, fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
	}
	fsize := fi.Size()

	readLen := fsize
	if readLen > MaxTailWindow {
		readLen = MaxTailWindow
	}

	f, err := os.Open( input )
	if err != nil {
		return nil, fmt.Errorf("%w: %s", util.ErrInputNotFound, input )
	}
	defer f.Close()

	// ReadAt may return io.EOF together with a full read at end of file
	tail := make( []byte, readLen )
	n, err := f.ReadAt( tail, fsize - readLen )
	if err != nil && err != io.EOF {
		return nil, err
	}
	tail = tail[:n]

	// legitimate envelopes are always appended last, so the
	// rightmost marker occurrence wins
	idx := bytes.LastIndex( tail, Marker )
	if idx == -1 {
		return []byte{}, nil
	}

	start := idx + len(Marker)
	if start + util.HeaderSize > len(tail) {
		return []byte{}, nil
	}
	length := binary.BigEndian.Uint32( tail[start : start + util.HeaderSize] )

	payloadStart := start + util.HeaderSize
	payloadEnd := uint64(payloadStart) + uint64(length)
	if payloadEnd > uint64(len(tail)) {
		// payload extends beyond the tail window already read.
		// the window covered exactly readLen bytes ending at EOF,
		// so the payload begins at fsize - readLen + payloadStart.
		buf := make( []byte, length )
		n, err := f.ReadAt( buf, fsize - readLen + int64(payloadStart) )
		if (err != nil && err != io.EOF) || uint32(n) != length {
			return []byte{}, nil
		}
		return buf, nil
	}
	return append( []byte{}, tail[payloadStart:payloadEnd]... ), nil
}

// EstimateAppendCapacity is advisory only: append mode does not use
// pixel bits at all, the number just keeps UI displays reasonable.
func EstimateAppendCapacity( input string ) int64 {
	fi, err := os.Stat( input )
	if err != nil {
		return 0
	}
	if fi.Size() <= appendReserved {
		return 0
	}
	return fi.Size() - appendReserved
}
