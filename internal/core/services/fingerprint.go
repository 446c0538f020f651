package services

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// fingerprintSalt versions the base image layout. Bumping it invalidates
// every cached base image at once.
const fingerprintSalt = "24.01.2023"

const fingerprintChunkSize = 4096

// RequirementsFingerprint hashes a dependency manifest into the base-image
// cache key. Identical manifest bytes always produce the identical key.
func RequirementsFingerprint(r io.Reader) (string, error) {
	h := md5.New()
	h.Write([]byte(fingerprintSalt))

	buf := make([]byte, fingerprintChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read manifest: %w", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FingerprintFile hashes the manifest file at path.
func FingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return RequirementsFingerprint(f)
}

// BaseImageTag composes the candidate base image tag for a Python version
// and a manifest fingerprint.
func BaseImageTag(pythonVersion, fingerprint string) string {
	return fmt.Sprintf("%s-%s", pythonVersion, fingerprint)
}
