package util
import (
	"fmt"
	"encoding/binary"
)

/*
 * transform payloads from/to the bit form used by every LSB codec.
 * bits travel most significant bit first, in input byte order.
 */
const (
	HeaderSize = 4	// length prefix, big-endian
	HeaderBits = HeaderSize * 8

	MaxPayloadSize = 1 << 32	// the length prefix is 32 bits wide
)

func BytesToBits( data []byte ) []uint8 {
	bits := make( []uint8, 0, len(data) * 8 )
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append( bits, (b >> uint(i)) & 1 )
		}
	}
	return bits
}

// a trailing group of fewer than 8 bits is dropped, not an error.
// extractors always read an exact bit count and rely on this.
func BitsToBytes( bits []uint8 ) []byte {
	result := make( []byte, 0, len(bits) / 8 )
	acc := byte(0)
	count := 0
	for _, bit := range bits {
		acc = (acc << 1) | (bit & 1)
		count++
		if count == 8 {
			result = append( result, acc )
			acc = 0
			count = 0
		}
	}
	return result
}

// prepend the 4-byte big-endian length header to payload
func Frame( payload []byte ) ([]byte, error) {
	if uint64(len(payload)) >= MaxPayloadSize {
		return nil, fmt.Errorf("Framing: %w ( %d bytes )", ErrPayloadTooLarge, len(payload) )
	}
	framed := make( []byte, HeaderSize + len(payload) )
	binary.BigEndian.PutUint32( framed, uint32(len(payload)) )
	copy( framed[HeaderSize:], payload )
	return framed, nil
}

// interpret the first 32 recovered bits as the payload length.
// the caller is responsible for reading exactly length*8 further bits.
func PayloadLength( headerBits []uint8 ) (uint32, error) {
	if len(headerBits) < HeaderBits {
		return 0, fmt.Errorf("Header: need %d bits, got %d", HeaderBits, len(headerBits) )
	}
	header := BitsToBytes( headerBits[:HeaderBits] )
	return binary.BigEndian.Uint32( header ), nil
}
