package bootstrap

import (
	"context"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"weather-lookup/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	*storage.Memory
	closed atomic.Bool
}

func (c *closeRecorder) Close() error {
	c.closed.Store(true)
	return nil
}

func TestGracefulShutdownClosesStoreBeforeDone(t *testing.T) {
	store := &closeRecorder{Memory: storage.NewMemory()}

	started := make(chan struct{})
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		store.Set(context.Background(), "searchHistory", `["London"]`)
		w.WriteHeader(http.StatusOK)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	srv := &http.Server{Handler: mux}

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	done := GracefulShutdown(srv, store, nil)

	respErr := make(chan error, 1)
	go func() {
		resp, err := http.Get("http://" + ln.Addr().String() + "/slow")
		if err == nil {
			resp.Body.Close()
		}
		respErr <- err
	}()

	<-started
	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case err := <-served:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop accepting")
	}
	assert.False(t, store.closed.Load(), "store closed while a request was in flight")

	select {
	case <-done:
		t.Fatal("shutdown reported done before the in-flight request finished")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown never finished")
	}
	assert.True(t, store.closed.Load())
	assert.NoError(t, <-respErr)

	raw, err := store.Get(context.Background(), "searchHistory")
	require.NoError(t, err)
	assert.Equal(t, `["London"]`, raw)
}
