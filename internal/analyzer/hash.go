package analyzer

import (
	"crypto/md5" //nolint:gosec // Duplicate detection, not integrity verification
	"encoding/hex"
	"io"
	"os"
)

// hashBlockSize is the read buffer size for content hashing.
const hashBlockSize = 64 * 1024

// fileDigest streams the file at path through MD5 and returns the
// hex-encoded digest. ok is false if the file cannot be opened or read;
// such files are excluded from duplicate grouping.
func fileDigest(path string) (digest string, ok bool) {
	file, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer file.Close()

	hash := md5.New() //nolint:gosec // See package import note

	buf := make([]byte, hashBlockSize)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return "", false
	}

	return hex.EncodeToString(hash.Sum(nil)), true
}
