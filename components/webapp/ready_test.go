package webapp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbeWebapp(t *testing.T) {
	t.Run("responding server is ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		assert.NoError(t, probeWebapp(server.Client(), server.URL))
	})

	t.Run("application-level status is ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		assert.NoError(t, probeWebapp(server.Client(), server.URL))
	})

	t.Run("server error is not ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		assert.ErrorContains(t, probeWebapp(server.Client(), server.URL), "status 502")
	})

	t.Run("unreachable server is not ready", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		assert.Error(t, probeWebapp(readyClient, server.URL))
	})
}

func TestReadyClientHasTimeout(t *testing.T) {
	// A hung connection must count as a failed attempt, not block forever
	assert.NotZero(t, readyClient.Timeout)
}
