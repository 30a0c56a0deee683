package webapp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams() *Params {
	return &Params{
		FullImagePath:   "inventreats/webapp:latest",
		Workers:         2,
		Threads:         4,
		UID:             defaultUID,
		GID:             defaultGID,
		PythonVersion:   defaultPythonVersion,
		MediaVolume:     defaultMediaVolume,
		RuntimePackages: []string{"libpq5", "libjpeg62-turbo"},
		BuildPackages:   []string{"build-essential", "libpq-dev"},
	}
}

func TestRenderDockerfile(t *testing.T) {
	dockerfile, err := RenderDockerfile(testParams())
	require.NoError(t, err)

	assert.Contains(t, dockerfile, "FROM python:3.11-slim-bookworm")

	// Launcher tuning is baked into the image environment
	assert.Contains(t, dockerfile, "UWSGI_WORKERS=2")
	assert.Contains(t, dockerfile, "UWSGI_THREADS=4")
	assert.Contains(t, dockerfile, "UWSGI_HTTP=:8000")

	// Build toolchain is purged, runtime libraries stay
	assert.Contains(t, dockerfile, "apt-get install -y --no-install-recommends libpq5 libjpeg62-turbo")
	assert.Contains(t, dockerfile, "apt-get purge -y --auto-remove build-essential libpq-dev")

	// collectstatic runs against dummy URLs, no live services at build time
	assert.Contains(t, dockerfile, "DATABASE_URL='postgres://none'")
	assert.Contains(t, dockerfile, "collectstatic --noinput")

	assert.Contains(t, dockerfile, "chown -R 1000:2000 /app/media")
	assert.Contains(t, dockerfile, "VOLUME /app/media")
	assert.Contains(t, dockerfile, "EXPOSE 8000")

	// The default CMD is informational only
	assert.Contains(t, dockerfile, `CMD ["/venv/bin/uwsgi", "--show-config"]`)
}

func TestWriteBuildContext(t *testing.T) {
	t.Run("writes Dockerfile and entrypoint", func(t *testing.T) {
		contextPath := t.TempDir()
		require.NoError(t, WriteBuildContext(contextPath, testParams()))

		dockerfile, err := os.ReadFile(filepath.Join(contextPath, "Dockerfile"))
		require.NoError(t, err)
		assert.Contains(t, string(dockerfile), "FROM python:")

		info, err := os.Stat(filepath.Join(contextPath, "entrypoint.sh"))
		require.NoError(t, err)
		assert.NotZero(t, info.Mode().Perm()&0o111, "entrypoint must be executable")
	})

	t.Run("fails on missing context", func(t *testing.T) {
		err := WriteBuildContext(filepath.Join(t.TempDir(), "does-not-exist"), testParams())
		assert.Error(t, err)
	})
}
