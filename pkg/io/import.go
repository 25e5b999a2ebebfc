package io

import (
	stderrors "errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/matzehuels/photosheet/pkg/errors"
)

// ReadImage decodes an image from r, applying EXIF orientation.
func ReadImage(r io.Reader) (image.Image, error) {
	img, err := decode(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "decode image")
	}
	return img, nil
}

// ImportImage opens and decodes the image at path.
func ImportImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeInputNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "open %s", path)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil && info.IsDir() {
		return nil, errors.New(errors.ErrCodeInputUnreadable, "%s is a directory", path)
	}

	img, err := decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputUnreadable, err, "decode %s", path)
	}
	return img, nil
}

func decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("image has no pixels (%dx%d)", b.Dx(), b.Dy())
	}
	return img, nil
}
