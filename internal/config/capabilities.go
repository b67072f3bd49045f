package config

import (
	"runtime"
	"strings"
)

// Capabilities describe the input hardware, computed once at startup.
type Capabilities struct {
	// FinePointer is true for a mouse or trackpad. Cursor effects are
	// disabled without one.
	FinePointer bool
}

// DetectCapabilities decides the pointer kind. override is "fine", "coarse"
// or empty; empty falls back to the platform.
func DetectCapabilities(override string) Capabilities {
	switch strings.ToLower(strings.TrimSpace(override)) {
	case "fine", "mouse":
		return Capabilities{FinePointer: true}
	case "coarse", "touch":
		return Capabilities{FinePointer: false}
	}
	return Capabilities{FinePointer: !touchPlatform(runtime.GOOS)}
}

func touchPlatform(goos string) bool {
	return goos == "android" || goos == "ios"
}
