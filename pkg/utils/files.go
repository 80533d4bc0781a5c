// Package utils loads program images from disk, decompressing them
// when their extension names a known archive or compression format.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/bodgit/sevenzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// MaxFileSize is the largest decompressed image accepted, the size of
// the address space.
const MaxFileSize = 0x10000

var (
	// ErrEmptyArchive is returned for archives that hold no files.
	ErrEmptyArchive = errors.New("utils: archive contains no files")
	// ErrFileTooLarge is returned when an image decompresses to more
	// than MaxFileSize bytes.
	ErrFileTooLarge = errors.New("utils: decompressed file too large")
)

// LoadFile loads the given file and performs decompression if necessary.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(filename, data)
	if err != nil {
		return nil, fmt.Errorf("utils: loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress returns the contents of data, decompressed according to
// the extension of name. Archives yield their first file. Data with an
// unknown extension is returned as is.
func Decompress(name string, data []byte) ([]byte, error) {
	var (
		decoder io.Reader
		err     error
	)

	// try to assert the compression type from the file extension
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".xz":
		decoder, err = xz.NewReader(bytes.NewReader(data))
	case ".br":
		decoder = brotli.NewReader(bytes.NewReader(data))
	case ".lz4":
		decoder = lz4.NewReader(bytes.NewReader(data))
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer d.Close()
		decoder = d
	case ".zip":
		return firstZipFile(data)
	case ".7z":
		return firstSevenZipFile(data)
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}

	return readLimited(decoder)
}

// readLimited reads r to the end, failing once more than MaxFileSize
// bytes have been produced.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func firstZipFile(data []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return readArchived(f.Open)
	}
	return nil, ErrEmptyArchive
}

func firstSevenZipFile(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		return readArchived(f.Open)
	}
	return nil, ErrEmptyArchive
}

// readArchived reads the whole of a file opened from an archive.
func readArchived(open func() (io.ReadCloser, error)) ([]byte, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return readLimited(rc)
}
