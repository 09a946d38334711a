package terminal

import (
	"os"
	"strconv"
)

// Size is the terminal size in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the current terminal dimensions. It tries stdout, then
// stderr, then the COLUMNS/LINES environment variables, then 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s, ok := sizeOf(f.Fd()); ok {
			return s
		}
	}
	return getSizeFromEnv()
}

// GetSizeFromFd returns terminal size from a specific file descriptor,
// falling back to the environment and then 80x24.
func GetSizeFromFd(fd uintptr) Size {
	if s, ok := sizeOf(fd); ok {
		return s
	}
	return getSizeFromEnv()
}

func getSizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
