package graph

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// Media is a readable source of upload bytes. Open is called once per upload
// and the returned reader is always closed before the upload returns.
type Media interface {
	// Name is the file name sent with the multipart part.
	Name() string
	Open() (io.ReadCloser, error)
}

type fileMedia string

// File returns Media backed by the file at path.
func File(path string) Media {
	return fileMedia(path)
}

func (f fileMedia) Name() string {
	return filepath.Base(string(f))
}

func (f fileMedia) Open() (io.ReadCloser, error) {
	return os.Open(string(f))
}

type bytesMedia struct {
	name string
	data []byte
}

// Bytes returns Media backed by an in-memory buffer.
func Bytes(name string, data []byte) Media {
	return &bytesMedia{name: name, data: data}
}

func (b *bytesMedia) Name() string {
	return b.name
}

func (b *bytesMedia) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}
