package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "hello")
	})
}

func TestServer_ListenRunShutdown(t *testing.T) {
	srv := NewServer(helloHandler(), config.Server{Port: 0, ShutdownTimeout: time.Second}, logger.Nop())

	assert.Nil(t, srv.Addr())
	require.NoError(t, srv.Listen())
	require.NotNil(t, srv.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "hello", string(body))

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenTwice(t *testing.T) {
	srv := NewServer(helloHandler(), config.Server{Port: 0}, logger.Nop())
	require.NoError(t, srv.Listen())
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })

	assert.ErrorIs(t, srv.Listen(), ErrAlreadyListening)
}

func TestServer_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	port := ln.Addr().(*net.TCPAddr).Port
	srv := NewServer(helloHandler(), config.Server{Port: port}, logger.Nop())

	assert.Error(t, srv.Listen())
	assert.Nil(t, srv.Addr())
}

func TestServer_RunWithoutListen(t *testing.T) {
	srv := NewServer(helloHandler(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, srv.Run(context.Background()), ErrNotListening)
}
