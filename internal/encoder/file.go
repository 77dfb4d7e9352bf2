package encoder

import (
	"bytes"
	"io"
	"mime/multipart"
)

// File is a raw upload the encoder can read.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type multipartFile struct {
	header *multipart.FileHeader
}

// FromMultipart adapts an uploaded form file. A nil header yields a nil File.
func FromMultipart(header *multipart.FileHeader) File {
	if header == nil {
		return nil
	}
	return multipartFile{header: header}
}

// FromMultipartList adapts every header, preserving order.
func FromMultipartList(headers []*multipart.FileHeader) []File {
	files := make([]File, 0, len(headers))
	for _, header := range headers {
		files = append(files, FromMultipart(header))
	}
	return files
}

func (f multipartFile) Name() string {
	return f.header.Filename
}

func (f multipartFile) Open() (io.ReadCloser, error) {
	return f.header.Open()
}

type bytesFile struct {
	name string
	data []byte
}

// FromBytes wraps in-memory content, mostly for tests and tooling.
func FromBytes(name string, data []byte) File {
	return bytesFile{name: name, data: data}
}

func (f bytesFile) Name() string {
	return f.name
}

func (f bytesFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
