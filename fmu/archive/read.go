package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Contents is what Read found in an archive.
type Contents struct {
	Descriptor []byte
	Entries    []Entry
}

// Read opens an FMU and returns its descriptor and a digest of every file entry.
func Read(path string) (*Contents, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = zr.Close() }()
	registerInflate(&zr.Reader)

	c := &Contents{}
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		data, err := readEntry(zf)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", zf.Name, err)
		}
		c.Entries = append(c.Entries, Entry{Name: zf.Name, Size: int64(len(data)), Digest: xxhash.Sum64(data)})
		if zf.Name == DescriptorName {
			c.Descriptor = data
		}
	}
	if c.Descriptor == nil {
		return nil, fmt.Errorf("archive %s has no %s", path, DescriptorName)
	}
	return c, nil
}

func readEntry(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
