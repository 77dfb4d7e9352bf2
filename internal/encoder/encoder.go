// Package encoder turns uploaded image files into self-describing data URL records.
package encoder

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/amusetravel-BackEnd/amuseAdmin/internal/domain"
	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	MIMEImagePNG  = "image/png"
	MIMEImageJPEG = "image/jpeg"
)

var formats = map[string]imaging.Format{
	MIMEImagePNG:  imaging.PNG,
	MIMEImageJPEG: imaging.JPEG,
}

const defaultMaxPixels = 40_000_000

type Encoder struct {
	maxDimension int
	maxPixels    int64
	concurrency  int
}

func NewEncoder(conf config.ImageConfig) *Encoder {
	maxPixels := int64(conf.MaxPixels)
	if maxPixels <= 0 {
		maxPixels = defaultMaxPixels
	}

	return &Encoder{
		maxDimension: conf.MaxDimension,
		maxPixels:    maxPixels,
		concurrency:  conf.EncodeConcurrency,
	}
}

// Future resolves once to either an ImageRecord or "no image". It never carries an error.
type Future struct {
	done   chan struct{}
	record domain.ImageRecord
	ok     bool
}

// Wait blocks until the encoding finished. ok is false when there is no image.
func (f *Future) Wait() (record domain.ImageRecord, ok bool) {
	<-f.done
	return f.record, f.ok
}

func (f *Future) Done() <-chan struct{} {
	return f.done
}

// BatchFuture resolves once every file of a batch has been encoded.
type BatchFuture struct {
	done    chan struct{}
	records []domain.ImageRecord
}

// Wait returns the successfully encoded records in input order.
func (f *BatchFuture) Wait() []domain.ImageRecord {
	<-f.done
	return f.records
}

func (f *BatchFuture) Done() <-chan struct{} {
	return f.done
}

// Encode starts reading file in the background. ctx only scopes logging: an initiated read
// always runs to completion.
func (e *Encoder) Encode(ctx context.Context, file File) *Future {
	f := &Future{done: make(chan struct{})}
	if file == nil {
		close(f.done)
		return f
	}

	go func() {
		defer close(f.done)
		f.record, f.ok = e.encodeLogged(ctx, file)
	}()

	return f
}

// EncodeBatch encodes all files concurrently. Files that fail are dropped from the result and
// logged; the order of the remaining records matches the input.
func (e *Encoder) EncodeBatch(ctx context.Context, files []File) *BatchFuture {
	f := &BatchFuture{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		records := make([]domain.ImageRecord, len(files))
		encoded := make([]bool, len(files))

		var g errgroup.Group
		if e.concurrency > 0 {
			g.SetLimit(e.concurrency)
		}

		for i, file := range files {
			if file == nil {
				continue
			}
			g.Go(func() error {
				records[i], encoded[i] = e.encodeLogged(ctx, file)
				return nil
			})
		}
		g.Wait()

		f.records = make([]domain.ImageRecord, 0, len(files))
		for i := range files {
			if !encoded[i] {
				log.Ctx(ctx).Warn().Int("index", i).Str("component", "EncodeBatch").Msg("dropping image that could not be encoded")
				continue
			}
			f.records = append(f.records, records[i])
		}
	}()

	return f
}

func (e *Encoder) encodeLogged(ctx context.Context, file File) (record domain.ImageRecord, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Ctx(ctx).Error().Interface("panic", r).Str("file_name", file.Name()).Str("component", "Encode").Msg("image decoding panicked")
			record, ok = domain.ImageRecord{}, false
		}
	}()

	record, err := e.encode(file)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("file_name", file.Name()).Str("component", "Encode").Msg("error reading the image file")
		return domain.ImageRecord{}, false
	}

	return record, true
}

func (e *Encoder) encode(file File) (domain.ImageRecord, error) {
	rc, err := file.Open()
	if err != nil {
		return domain.ImageRecord{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return domain.ImageRecord{}, fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return domain.ImageRecord{}, fmt.Errorf("empty file: %w", errs.ErrNotAnImage)
	}

	contentType := http.DetectContentType(data)
	if _, ok := formats[contentType]; !ok {
		return domain.ImageRecord{}, fmt.Errorf("unsupported content type %q: %w", contentType, errs.ErrNotAnImage)
	}

	data, err = e.fit(data, contentType)
	if err != nil {
		return domain.ImageRecord{}, err
	}

	return domain.ImageRecord{
		FileName:   file.Name(),
		Base64Data: DataURL(contentType, data),
	}, nil
}

// fit validates the image and shrinks it when it exceeds the configured bound. The header is
// checked against the pixel limit before any pixel buffer is allocated.
func (e *Encoder) fit(data []byte, contentType string) ([]byte, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", errs.ErrNotAnImage)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > e.maxPixels {
		return nil, fmt.Errorf("image of %dx%d exceeds %d pixels: %w", cfg.Width, cfg.Height, e.maxPixels, errs.ErrNotAnImage)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", errs.ErrNotAnImage)
	}

	if e.maxDimension <= 0 {
		return data, nil
	}

	bounds := img.Bounds()
	if bounds.Dx() <= e.maxDimension && bounds.Dy() <= e.maxDimension {
		return data, nil
	}

	resized := imaging.Fit(img, e.maxDimension, e.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, formats[contentType], imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}

	return buf.Bytes(), nil
}

// DataURL renders data the way browsers embed it: data:<mime>;base64,<payload>.
func DataURL(contentType string, data []byte) string {
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
