package img
import (
	"fmt"
	"bytes"
	"image/gif"

	"clairvoyant/stegano/util"
)

/*
 * gif frames are palette-indexed, so the LSB goes into the pixel
 * index, not an RGB intensity. the index bytes survive re-encoding
 * untouched, which is all the extractor needs.
 *
 * with an odd-sized palette the top index has no pair partner: setting
 * its LSB would produce an index outside the palette. such slots carry
 * no bit and both sides skip them the same way.
 */
func usableIndex( pix uint8, paletteLen int ) bool {
	return (int(pix & 0xfe) | 1) < paletteLen
}
func HideInGif( decoy, data []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	framed, err := util.Frame( data )
	if err != nil {
		return nil, err
	}
	bits := util.BytesToBits( framed )

	// embed bits into pixel indicies, continuing across frames
	bitIdx := 0
	for frameIdx, frame := range g.Image {
		plen := len(frame.Palette)
		for i := range frame.Pix {
			if bitIdx >= len(bits) {
				break
			}
			if usableIndex( frame.Pix[i], plen ) == false {
				continue
			}
			frame.Pix[i] = (frame.Pix[i] & 0xfe) | bits[bitIdx]
			bitIdx++
		}
		g.Image[frameIdx] = frame
		if bitIdx >= len(bits) {
			break
		}
	}
	if bitIdx < len(bits) {
		return nil, fmt.Errorf("%w ( GIF file is too small )", util.ErrPayloadTooLarge )
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = gif.EncodeAll( outbuf, g ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromGif( decoy []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	indexBytes := []uint8{}
	for _, frame := range g.Image {
		plen := len(frame.Palette)
		for _, pix := range frame.Pix {
			if usableIndex( pix, plen ) {
				indexBytes = append( indexBytes, pix )
			}
		}
	}
	return ExtractFromBuffer( indexBytes )
}
