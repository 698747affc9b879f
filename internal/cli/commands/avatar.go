package commands

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// encodeAvatar reads an image file and returns it as a data-URI, the shape
// the profile endpoint carries avatars in. maxBytes caps the file size; the
// server side is not known to enforce a limit of its own.
func encodeAvatar(path string, maxBytes int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("avatar file %s is %d bytes, limit is %d", path, info.Size(), maxBytes)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	mt := mimetype.Detect(raw)
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}
