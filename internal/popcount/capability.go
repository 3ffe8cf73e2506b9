package popcount

import (
	"os"
	"strings"
)

// Kernel identifies a population-count implementation.
type Kernel uint8

const (
	// Generic is the portable bit-clearing loop.
	Generic Kernel = iota
	// Hardware uses the CPU population-count instruction via math/bits.
	Hardware
)

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "SMALLBITSET_POPCOUNT"

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "hardware", "hw":
		return Hardware, true
	default:
		return Generic, false
	}
}

// Package-level state, initialized once at package init.
var (
	active      Kernel
	hasOverride bool

	// set by platform-specific init
	hasPOPCNT bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	hasOverride = false
	if override := os.Getenv(EnvOverride); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			if isAvailable(k) {
				use(k)
				return
			}
		}
	}

	if hasPOPCNT {
		use(Hardware)
		return
	}
	use(Generic)
}

func isAvailable(k Kernel) bool {
	switch k {
	case Generic:
		return true
	case Hardware:
		return hasPOPCNT
	default:
		return false
	}
}

// Active returns the currently selected kernel.
func Active() Kernel {
	return active
}

// IsOverridden returns true if SMALLBITSET_POPCOUNT was set to a known kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if the CPU exposes a population-count instruction.
func HasPOPCNT() bool {
	return hasPOPCNT
}
