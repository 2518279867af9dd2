package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDefaultConfig(t *testing.T) {
	config := GetDefaultConfig()

	assert.Equal(t, "auto", config.Language)
	assert.False(t, config.SkipForceRemove)
	assert.False(t, config.SkipConfirmation)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadUserConfig(t *testing.T) {
	t.Run("creates the file when missing", func(t *testing.T) {
		dir := t.TempDir()

		config := GetDefaultConfig()
		loaded, err := loadUserConfig(dir, &config)
		assert.NoError(t, err)
		assert.Equal(t, "auto", loaded.Language)

		_, err = os.Stat(filepath.Join(dir, "config.yml"))
		assert.NoError(t, err)
	})

	t.Run("user values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "language: pl\nskipConfirmation: true\n"
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o666))

		config := GetDefaultConfig()
		loaded, err := loadUserConfig(dir, &config)
		assert.NoError(t, err)
		assert.Equal(t, "pl", loaded.Language)
		assert.True(t, loaded.SkipConfirmation)
		assert.Equal(t, "info", loaded.Logging.Level)
	})

	t.Run("strips a byte order mark", func(t *testing.T) {
		dir := t.TempDir()
		content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("language: en\n")...)
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), content, 0o666))

		config := GetDefaultConfig()
		loaded, err := loadUserConfig(dir, &config)
		assert.NoError(t, err)
		assert.Equal(t, "en", loaded.Language)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{nope"), 0o666))

		config := GetDefaultConfig()
		_, err := loadUserConfig(dir, &config)
		assert.Error(t, err)
	})
}
