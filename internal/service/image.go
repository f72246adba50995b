package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"github.com/nfnt/resize"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
)

const (
	maxPhotoSide   = 1280
	maxPhotoPixels = 40_000_000
	photoQuality   = 85
)

// checkPhoto accepts JPEG and PNG payloads up to MaxFileSize, judged by content.
func checkPhoto(file []byte) *erro.CustomError {
	if len(file) > MaxFileSize {
		return erro.ClientError(erro.ErrorLargeFile)
	}
	contentType := http.DetectContentType(file)
	if contentType != "image/jpeg" && contentType != "image/png" {
		return erro.ClientError(erro.ErrorInvalidFileFormat)
	}
	return nil
}

// preparePhoto fits the image into maxPhotoSide x maxPhotoSide and re-encodes it as JPEG.
// The header is read first so that no bitmap above maxPhotoPixels is ever allocated.
func preparePhoto(file []byte) ([]byte, *erro.CustomError) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(file))
	if err != nil {
		return nil, erro.ClientError(fmt.Sprintf(erro.ErrorImageDecode, err))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > maxPhotoPixels {
		return nil, erro.ClientError(erro.ErrorInvalidFileFormat)
	}
	img, _, err := image.Decode(bytes.NewReader(file))
	if err != nil {
		return nil, erro.ClientError(fmt.Sprintf(erro.ErrorImageDecode, err))
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxPhotoSide || bounds.Dy() > maxPhotoSide {
		img = resize.Thumbnail(maxPhotoSide, maxPhotoSide, img, resize.Lanczos3)
	}
	var buf bytes.Buffer
	err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: photoQuality})
	if err != nil {
		return nil, erro.ServerError(fmt.Sprintf(erro.ErrorImageEncode, err))
	}
	return buf.Bytes(), nil
}
