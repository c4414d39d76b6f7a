package img
import (
	"bytes"
	"image"
	"image/png"

	"clairvoyant/stegano/util"
)

func HideInPNG( decoy, data []byte ) ([]byte, error) {
	m, _, err := image.Decode( bytes.NewReader( decoy ) )
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
	if err = png.Encode( buf, out ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromPNG( decoy []byte ) ([]byte, error) {
	m, _, err := image.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return ExtractFromBuffer( FlattenRGB( m ) )
}
