package cryptox

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vkozyrev/floodwatch/internal/common"
)

const (
	keyFileName  = "device.key"
	saltFileName = "device.salt"
	secretSize   = 32
	saltSize     = 16
)

// LoadOrCreateDeviceKey returns the cache encryption key for this install,
// deriving it from a device secret and salt stored in dir. On first run both
// files are generated. Any failure here is a platform precondition failure:
// without the key material the encrypted cache cannot exist, so callers are
// expected to treat an error as fatal at startup.
func LoadOrCreateDeviceKey(dir string) ([]byte, error) {
	secret, err := loadOrCreateFile(filepath.Join(dir, keyFileName), secretSize)
	if err != nil {
		return nil, fmt.Errorf("device key: %w", err)
	}
	salt, err := loadOrCreateFile(filepath.Join(dir, saltFileName), saltSize)
	if err != nil {
		return nil, fmt.Errorf("device salt: %w", err)
	}
	return DeriveCacheKey(secret, salt), nil
}

func loadOrCreateFile(path string, size int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err == nil {
		if len(b) != size {
			return nil, fmt.Errorf("%s: unexpected length %d", path, len(b))
		}
		return b, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}

	b = common.GenerateRandByteArray(size)
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return nil, err
	}
	return b, nil
}
