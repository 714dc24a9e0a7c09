package kernel

import (
	"os"
	"strings"
)

// Impl identifies a kernel implementation.
type Impl uint8

const (
	// Generic is the pure Go multiply-add implementation.
	Generic Impl = iota
	// FMA uses fused multiply-add backed by hardware instructions.
	FMA
)

// String returns the string representation of an Impl.
func (i Impl) String() string {
	switch i {
	case Generic:
		return "generic"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseImpl parses a string into an Impl value.
func ParseImpl(s string) (Impl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "fma":
		return FMA, true
	default:
		return Generic, false
	}
}

// EnvOverride is the environment variable consulted at init.
const EnvOverride = "VECGEOM_KERNEL"

var (
	active      Impl
	hasOverride bool

	// set by platform-specific init
	hasFMA bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvOverride); override != "" {
		if impl, ok := ParseImpl(override); ok && isAvailable(impl) {
			hasOverride = true
			use(impl)
			return
		}
	}

	if hasFMA {
		use(FMA)
		return
	}
	use(Generic)
}

func isAvailable(impl Impl) bool {
	switch impl {
	case Generic:
		return true
	case FMA:
		return hasFMA
	default:
		return false
	}
}

func use(impl Impl) {
	active = impl
	switch impl {
	case FMA:
		dotImpl = dotFMA
		axpyImpl = axpyFMA
	default:
		dotImpl = dotGeneric
		axpyImpl = axpyGeneric
	}
}

// Active returns the kernel implementation in use.
func Active() Impl {
	return active
}

// IsOverridden returns true if VECGEOM_KERNEL selected the implementation.
func IsOverridden() bool {
	return hasOverride
}

// HasFMA reports whether the CPU provides hardware fused multiply-add.
func HasFMA() bool {
	return hasFMA
}
