// File: pkg/scan/binary.go
package scan

import "bytes"

// isBinaryContent reports whether content is likely binary by checking its
// first 512 bytes for null bytes or a high ratio of non-printable
// characters. Empty content is considered text.
func isBinaryContent(content []byte) bool {
	sample := content
	if len(sample) > 512 {
		sample = sample[:512]
	}
	if len(sample) == 0 {
		return false
	}

	if bytes.ContainsRune(sample, 0) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// More than 30% non-printable characters reads as binary.
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
