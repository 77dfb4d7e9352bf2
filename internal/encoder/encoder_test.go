package encoder

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/amusetravel-BackEnd/amuseAdmin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func createTestJPEG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}))
	return buf.Bytes()
}

// createOversizedPNG returns a tiny PNG whose header declares width x height RGBA pixels.
func createOversizedPNG(t *testing.T, width, height uint32) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	chunk := func(kind string, data []byte) {
		var length [4]byte
		binary.BigEndian.PutUint32(length[:], uint32(len(data)))
		buf.Write(length[:])

		body := append([]byte(kind), data...)
		buf.Write(body)

		var sum [4]byte
		binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(body))
		buf.Write(sum[:])
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	chunk("IHDR", ihdr)

	var idat bytes.Buffer
	zw := zlib.NewWriter(&idat)
	require.NoError(t, zw.Close())
	chunk("IDAT", idat.Bytes())
	chunk("IEND", nil)

	return buf.Bytes()
}

type panickingFile struct{}

func (panickingFile) Name() string { return "panic.png" }

func (panickingFile) Open() (io.ReadCloser, error) { panic("decoder blew up") }

type brokenFile struct{}

func (brokenFile) Name() string { return "broken.png" }

func (brokenFile) Open() (io.ReadCloser, error) { return nil, errors.New("disk error") }

func decodeDataURL(t *testing.T, dataURL string) (string, []byte) {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, "data:"))
	header, payload, found := strings.Cut(strings.TrimPrefix(dataURL, "data:"), ",")
	require.True(t, found)

	raw, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	return strings.TrimSuffix(header, ";base64"), raw
}

func TestEncodePNG(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{})
	data := createTestPNG(t, 4, 4)

	record, ok := enc.Encode(context.Background(), FromBytes("course.png", data)).Wait()
	require.True(t, ok)

	assert.Equal(t, "course.png", record.FileName)
	mime, raw := decodeDataURL(t, record.Base64Data)
	assert.Equal(t, MIMEImagePNG, mime)
	assert.Equal(t, data, raw)
}

func TestEncodeJPEG(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{})

	record, ok := enc.Encode(context.Background(), FromBytes("main.jpg", createTestJPEG(t, 8, 8))).Wait()
	require.True(t, ok)

	assert.Equal(t, "main.jpg", record.FileName)
	assert.True(t, strings.HasPrefix(record.Base64Data, "data:image/jpeg;base64,"))
}

func TestEncodeResolvesToNoImage(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{})

	testCases := []struct {
		Name string
		File File
	}{
		{Name: "No file", File: nil},
		{Name: "Empty file", File: FromBytes("empty.png", nil)},
		{Name: "Not an image", File: FromBytes("notes.txt", []byte("just some text"))},
		{Name: "Truncated png", File: FromBytes("cut.png", createTestPNG(t, 4, 4)[:20])},
		{Name: "Open failure", File: brokenFile{}},
		{Name: "Oversized header", File: FromBytes("bomb.png", createOversizedPNG(t, 60000, 60000))},
		{Name: "Zero width header", File: FromBytes("flat.png", createOversizedPNG(t, 0, 10))},
		{Name: "Panic while reading", File: panickingFile{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			record, ok := enc.Encode(context.Background(), tc.File).Wait()
			assert.False(t, ok)
			assert.Empty(t, record.FileName)
			assert.Empty(t, record.Base64Data)
		})
	}
}

func TestEncodeRejectsImagesAboveMaxPixels(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{MaxPixels: 100})

	_, ok := enc.Encode(context.Background(), FromBytes("wide.png", createTestPNG(t, 40, 20))).Wait()
	assert.False(t, ok)

	record, ok := enc.Encode(context.Background(), FromBytes("tiny.png", createTestPNG(t, 10, 10))).Wait()
	require.True(t, ok)
	assert.Equal(t, "tiny.png", record.FileName)
}

func TestEncodeShrinksLargeImages(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{MaxDimension: 10})

	record, ok := enc.Encode(context.Background(), FromBytes("wide.png", createTestPNG(t, 40, 20))).Wait()
	require.True(t, ok)

	_, raw := decodeDataURL(t, record.Base64Data)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 5, cfg.Height)
}

func TestEncodeKeepsSmallImagesUntouched(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{MaxDimension: 100})
	data := createTestPNG(t, 40, 20)

	record, ok := enc.Encode(context.Background(), FromBytes("small.png", data)).Wait()
	require.True(t, ok)

	_, raw := decodeDataURL(t, record.Base64Data)
	assert.Equal(t, data, raw)
}

func TestEncodeBatchPreservesOrder(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{EncodeConcurrency: 2})

	files := []File{
		FromBytes("a.png", createTestPNG(t, 2, 2)),
		FromBytes("b.jpg", createTestJPEG(t, 2, 2)),
		FromBytes("c.png", createTestPNG(t, 3, 3)),
		FromBytes("d.png", createTestPNG(t, 4, 4)),
	}

	records := enc.EncodeBatch(context.Background(), files).Wait()
	require.Len(t, records, len(files))
	for i, record := range records {
		assert.Equal(t, files[i].Name(), record.FileName)
		assert.NotEmpty(t, record.Base64Data)
	}
}

func TestEncodeBatchDropsFailedEntries(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{})

	files := []File{
		FromBytes("a.png", createTestPNG(t, 2, 2)),
		FromBytes("bad.txt", []byte("nope")),
		nil,
		brokenFile{},
		FromBytes("bomb.png", createOversizedPNG(t, 60000, 60000)),
		panickingFile{},
		FromBytes("c.png", createTestPNG(t, 2, 2)),
	}

	records := enc.EncodeBatch(context.Background(), files).Wait()
	require.Len(t, records, 2)
	assert.Equal(t, "a.png", records[0].FileName)
	assert.Equal(t, "c.png", records[1].FileName)
}

func TestEncodeBatchEmpty(t *testing.T) {
	enc := NewEncoder(config.ImageConfig{})

	future := enc.EncodeBatch(context.Background(), nil)
	<-future.Done()
	assert.Empty(t, future.Wait())
}
