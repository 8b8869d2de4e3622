package archive

import (
	"archive/zip"
	"io"

	"github.com/klauspost/compress/flate"
)

func newFlateWriter(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

func registerFlate(zw *zip.Writer) {
	zw.RegisterCompressor(zip.Deflate, newFlateWriter)
}

func registerInflate(zr *zip.Reader) {
	zr.RegisterDecompressor(zip.Deflate, flate.NewReader)
}
