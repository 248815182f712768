package resource

import (
	"bytes"
	"image"
	"io"
	"os"

	"github.com/sjinzh/slint/pkg/errors"

	// Registered image formats. PNG/JPEG/GIF come from the standard
	// library; the rest from golang.org/x/image.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrNoData is returned when decoding a None resource.
var ErrNoData = errors.Newf("resource", errors.KindResource, "resource has no data")

func reader(r Resource) (io.ReadCloser, error) {
	switch r := r.(type) {
	case AbsoluteFilePath:
		f, err := os.Open(r.Path)
		if err != nil {
			return nil, errors.New("resource.Open", errors.KindResource, err)
		}
		return f, nil
	case EmbeddedData:
		return io.NopCloser(bytes.NewReader(r.Data)), nil
	default:
		return nil, ErrNoData
	}
}

// DecodeSize returns the pixel dimensions of an image resource without
// decoding the full pixel data.
func DecodeSize(r Resource) (width, height int, err error) {
	rc, err := reader(r)
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close()

	config, _, err := image.DecodeConfig(rc)
	if err != nil {
		return 0, 0, errors.New("resource.DecodeSize", errors.KindResource, err)
	}
	return config.Width, config.Height, nil
}

// Decode decodes an image resource into pixel data.
func Decode(r Resource) (image.Image, error) {
	rc, err := reader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, errors.New("resource.Decode", errors.KindResource, err)
	}
	return img, nil
}
