package img
import (
	"fmt"
	"bytes"
	"image/jpeg"
	"encoding/binary"

	"lukechampine.com/jsteg"
	"clairvoyant/stegano/util"
)

/*
 * jpeg is lossy, so pixel LSBs would not survive a re-encode.
 * jsteg hides in the quantized DCT coefficients instead. the framing
 * is the same 4-byte big-endian length prefix as everywhere else.
 */
func HideInJpeg( decoy, data []byte ) ([]byte, error) {

	m, err := jpeg.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	capacity := jsteg.Capacity( m, nil )
	if capacity < len(data) + util.HeaderSize {
		return nil, fmt.Errorf("%w ( %d < %d )",
			util.ErrPayloadTooLarge, capacity, len(data) + util.HeaderSize )
	}

	framed, err := util.Frame( data )
	if err != nil {
		return nil, err
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = jsteg.Hide( outbuf, m, framed, nil ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromJpeg( decoy []byte ) ([]byte, error) {
	if len(decoy) == 0 {
		return decoy, nil
	}
	hidden, err := jsteg.Reveal( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	if len(hidden) < util.HeaderSize {
		return nil, fmt.Errorf("JPEG: no length header recovered")
	}

	size := binary.BigEndian.Uint32( hidden[:util.HeaderSize] )
	if uint64(len(hidden) - util.HeaderSize) < uint64(size) {
		return nil, fmt.Errorf("JPEG: Invalid length encoding")
	}
	return hidden[util.HeaderSize : util.HeaderSize + size], nil
}
