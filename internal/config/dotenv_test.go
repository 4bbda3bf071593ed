package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDotEnv writes a .env file and unsets whatever it may have loaded
// once the test ends. Call it after clearEnvVars/setEnvVars.
func writeDotEnv(t *testing.T, body string) string {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range configEnvKeys {
			_ = os.Unsetenv(k)
		}
	})
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadDotEnv_Development(t *testing.T) {
	clearEnvVars(t)
	p := writeDotEnv(t, "JWT_SECRET=from_file\nMONGO_URL=mongodb://file/db\n")

	loaded, err := loadDotEnv(p)

	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, "from_file", os.Getenv("JWT_SECRET"))
	assert.Equal(t, "mongodb://file/db", os.Getenv("MONGO_URL"))
}

func TestLoadDotEnv_KeepsExistingVariables(t *testing.T) {
	setEnvVars(t, map[string]string{"JWT_SECRET": "from_env"})
	p := writeDotEnv(t, "JWT_SECRET=from_file\n")

	_, err := loadDotEnv(p)

	require.NoError(t, err)
	assert.Equal(t, "from_env", os.Getenv("JWT_SECRET"))
}

func TestLoadDotEnv_ProductionSkipsFile(t *testing.T) {
	setEnvVars(t, map[string]string{"NODE_ENV": "production"})
	p := writeDotEnv(t, "JWT_SECRET=from_file\n")

	loaded, err := loadDotEnv(p)

	require.NoError(t, err)
	assert.False(t, loaded)
	_, ok := os.LookupEnv("JWT_SECRET")
	assert.False(t, ok)
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	clearEnvVars(t)

	loaded, err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestLoadDotEnv_MalformedFile(t *testing.T) {
	clearEnvVars(t)
	p := writeDotEnv(t, "JWT_SECRET='unterminated\n")

	_, err := loadDotEnv(p)

	assert.Error(t, err)
}
