package video
import (
	"gocv.io/x/gocv"

	"clairvoyant/stegano/util"
)

type Probe struct {
	Frames	int
	Width	int
	Height	int
	FPS	float64
}

func ProbeVideo( path string ) (*Probe, error) {
	capture, err := gocv.VideoCaptureFile( path )
	if err != nil {
		return nil, err
	}
	defer capture.Close()

	p := &Probe{
		Frames: int(capture.Get( gocv.VideoCaptureFrameCount )),
		Width: int(capture.Get( gocv.VideoCaptureFrameWidth )),
		Height: int(capture.Get( gocv.VideoCaptureFrameHeight )),
		FPS: capture.Get( gocv.VideoCaptureFPS ),
	}
	if p.FPS <= 0 {
		p.FPS = 25.0
	}
	return p, nil
}

/*
 * capacity for LSB-in-frame stego. only meaningful when the output is
 * written with a lossless (or near-lossless) codec, lossy re-encoding
 * destroys the LSBs. returns 0 when the video cannot be opened.
 */
func EstimateLSBCapacity( path string, bitsPerChannel int ) int64 {
	if bitsPerChannel < 1 {
		bitsPerChannel = 1
	}
	p, err := ProbeVideo( path )
	if err != nil {
		return 0
	}
	totalBits := int64(p.Frames) * int64(p.Width) * int64(p.Height) * 3 * int64(bitsPerChannel)
	usableBits := totalBits - util.HeaderBits
	if usableBits < 0 {
		return 0
	}
	return usableBits / 8
}
