package img
import (
	"bytes"
	"golang.org/x/image/bmp"

	"clairvoyant/stegano/util"
)

// basically the same as with png, just another package imported
func HideInBMP( decoy, data []byte ) ([]byte, error) {
	m, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}

	framed, err := util.Frame( data )
	if err != nil {
		return nil, err
	}

	bounds := m.Bounds()
	pixelBytes := FlattenRGB( m )
	if err = EmbedInBuffer( pixelBytes, framed ); err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	out := BufferToImage( pixelBytes, bounds.Dx(), bounds.Dy() )
	if err = bmp.Encode( buf, out ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromBMP( decoy []byte ) ([]byte, error) {
	m, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return ExtractFromBuffer( FlattenRGB( m ) )
}
