// File: pkg/scan/probe.go
package scan

import "os"

// SizeOf returns the file's size in bytes. A stat failure yields 0 rather
// than an error: a single unreadable file must not abort a scan.
func SizeOf(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

// IsOversized reports whether a file of the given size exceeds the cap.
func IsOversized(size, maxBytes int64) bool {
	return size > maxBytes
}
