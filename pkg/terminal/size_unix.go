//go:build unix

package terminal

import "golang.org/x/sys/unix"

// sizeOf queries the size of the tty behind fd via TIOCGWINSZ.
func sizeOf(fd uintptr) (Size, bool) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 || ws.Row == 0 {
		return Size{}, false
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}, true
}
