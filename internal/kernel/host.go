package kernel

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"
)

// HostFeatures names the widest SIMD extension the host CPU reports.
func HostFeatures() string {
	switch runtime.GOARCH {
	case "amd64", "386":
		switch {
		case cpu.X86.HasAVX512F:
			return "AVX-512"
		case cpu.X86.HasAVX2:
			return "AVX2"
		case cpu.X86.HasSSE41:
			return "SSE4.1"
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return "NEON"
		}
	}
	return "generic"
}

// Describe returns a one-line summary of the device for log output.
func (d *Device) Describe() string {
	return fmt.Sprintf("%d lanes, block %d, %s/%s (%s)", d.Lanes, d.BlockSize, runtime.GOOS, runtime.GOARCH, HostFeatures())
}
