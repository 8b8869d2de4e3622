// Package archive assembles FMU zip archives: modelDescription.xml at the root and
// the shared library under binaries/<platform>/.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/sirupsen/logrus"
)

const (
	// DescriptorName is the archive-root path of the model description.
	DescriptorName = "modelDescription.xml"
	binariesDir    = "binaries"
	tempPrefix     = "fmu_tmp"
)

// Request describes one archive build.
type Request struct {
	Descriptor  []byte   // modelDescription.xml contents
	BinaryPath  string   // located shared library
	Platform    Platform // binaries/ subfolder
	LibraryName string   // file name inside binaries/<platform>/; defaults to the binary's base name
	OutputPath  string   // destination .fmu
}

// Entry is one file written to the archive.
type Entry struct {
	Name   string
	Size   int64
	Digest uint64 // xxh64 of the uncompressed contents
}

func (e Entry) String() string {
	return fmt.Sprintf("%-48s %10d  %016x", e.Name, e.Size, e.Digest)
}

// Result lists what Assemble wrote.
type Result struct {
	Path    string
	Entries []Entry
}

// Assemble stages the descriptor and binary in a temporary directory and zips them
// to req.OutputPath. The binary is checked before anything is created, so a
// BinaryNotFoundError leaves no output behind. The temporary directory is removed on
// every return path; a WriteError may leave a partial archive for the caller to discard.
func Assemble(req Request) (*Result, error) {
	if err := checkBinary(req.BinaryPath); err != nil {
		return nil, err
	}
	if _, err := ParsePlatform(string(req.Platform)); err != nil {
		return nil, err
	}
	if req.OutputPath == "" {
		return nil, fmt.Errorf("output path must not be empty")
	}
	libName := req.LibraryName
	if libName == "" {
		libName = filepath.Base(req.BinaryPath)
	}
	if err := checkLibraryName(libName); err != nil {
		return nil, err
	}

	tmp, err := os.MkdirTemp("", tempPrefix)
	if err != nil {
		return nil, &WriteError{Op: "create", Path: "temporary directory", Err: err}
	}
	defer func() {
		if err := os.RemoveAll(tmp); err != nil {
			logrus.Warnf("removing %s: %v", tmp, err)
		}
	}()

	logrus.Debugf("Write %s", DescriptorName)
	mdPath := filepath.Join(tmp, DescriptorName)
	if err := os.WriteFile(mdPath, req.Descriptor, 0o644); err != nil {
		return nil, &WriteError{Op: "write", Path: mdPath, Err: err}
	}

	logrus.Debugf("Place binaries")
	binDir := filepath.Join(tmp, binariesDir, string(req.Platform))
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, &WriteError{Op: "mkdir", Path: binDir, Err: err}
	}
	if err := copyFile(req.BinaryPath, filepath.Join(binDir, libName)); err != nil {
		return nil, err
	}

	logrus.Debugf("Pack zip %s", req.OutputPath)
	entries, err := pack(tmp, req.OutputPath)
	if err != nil {
		return nil, err
	}
	return &Result{Path: req.OutputPath, Entries: entries}, nil
}

// checkLibraryName requires a plain file name so the library lands in binaries/<platform>/.
func checkLibraryName(name string) error {
	if name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("library name %q must be a plain file name", name)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return &WriteError{Op: "open", Path: src, Err: err}
	}
	defer func() { _ = in.Close() }()
	info, err := in.Stat()
	if err != nil {
		return &WriteError{Op: "stat", Path: src, Err: err}
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return &WriteError{Op: "create", Path: dst, Err: err}
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return &WriteError{Op: "copy", Path: dst, Err: err}
	}
	if err := out.Close(); err != nil {
		return &WriteError{Op: "close", Path: dst, Err: err}
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return &WriteError{Op: "chtimes", Path: dst, Err: err}
	}
	return nil
}

// pack writes the descriptor first, then every file under binaries/ in lexical order.
func pack(root, outPath string) ([]Entry, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return nil, &WriteError{Op: "mkdir", Path: filepath.Dir(outPath), Err: err}
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, &WriteError{Op: "create", Path: outPath, Err: err}
	}
	zw := zip.NewWriter(f)
	registerFlate(zw)

	abort := func(op string, err error) ([]Entry, error) {
		_ = zw.Close()
		_ = f.Close()
		return nil, &WriteError{Op: op, Path: outPath, Err: err}
	}

	var entries []Entry
	e, err := addFile(zw, root, DescriptorName)
	if err != nil {
		return abort("add "+DescriptorName, err)
	}
	entries = append(entries, e)

	err = filepath.WalkDir(filepath.Join(root, binariesDir), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		e, err := addFile(zw, root, rel)
		if err != nil {
			return err
		}
		logrus.Debugf("-- Add %s", e.Name)
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		return abort("add binaries", err)
	}

	if err := zw.Close(); err != nil {
		_ = f.Close()
		return nil, &WriteError{Op: "finalize", Path: outPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return nil, &WriteError{Op: "close", Path: outPath, Err: err}
	}
	return entries, nil
}

func addFile(zw *zip.Writer, root, rel string) (Entry, error) {
	src, err := os.Open(filepath.Join(root, rel))
	if err != nil {
		return Entry{}, err
	}
	defer func() { _ = src.Close() }()
	info, err := src.Stat()
	if err != nil {
		return Entry{}, err
	}

	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return Entry{}, err
	}
	hdr.Name = filepath.ToSlash(rel)
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return Entry{}, err
	}
	h := xxhash.New()
	n, err := io.Copy(io.MultiWriter(w, h), src)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Name: hdr.Name, Size: n, Digest: h.Sum64()}, nil
}
