package archive

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform is an FMI 2.0 binaries/ folder name.
type Platform string

const (
	Linux64  Platform = "linux64"
	Linux32  Platform = "linux32"
	Darwin64 Platform = "darwin64"
	Win64    Platform = "win64"
	Win32    Platform = "win32"
)

var platforms = []Platform{Linux64, Linux32, Darwin64, Win64, Win32}

// ParsePlatform accepts one of the five FMI 2.0 platform folder names.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q; valid: linux64, linux32, darwin64, win64, win32", s)
}

// DetectPlatform returns the platform folder for the running binary.
func DetectPlatform() Platform {
	return platformFor(runtime.GOOS, runtime.GOARCH)
}

func platformFor(goos, goarch string) Platform {
	wide := goarch == "amd64" || goarch == "arm64"
	switch goos {
	case "linux":
		if wide {
			return Linux64
		}
		return Linux32
	case "darwin":
		return Darwin64
	case "windows":
		if wide {
			return Win64
		}
		return Win32
	}
	return Linux64
}

func (p Platform) isWindows() bool { return strings.HasPrefix(string(p), "win") }

// LibraryName is the file name the build produces for modelID on p:
// lib<id>.so, lib<id>.dylib or <id>.dll.
func LibraryName(modelID string, p Platform) string {
	switch {
	case p == Darwin64:
		return "lib" + modelID + ".dylib"
	case p.isWindows():
		return modelID + ".dll"
	default:
		return "lib" + modelID + ".so"
	}
}

// ArchiveLibraryName is the name FMI expects inside binaries/<platform>/: the
// modelIdentifier plus the platform extension, without a lib prefix.
func ArchiveLibraryName(modelID string, p Platform) string {
	name := LibraryName(modelID, p)
	if p.isWindows() {
		return name
	}
	return strings.TrimPrefix(name, "lib")
}
