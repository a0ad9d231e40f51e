package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	release := make(chan struct{})
	srv := &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	})}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.Serve(ln) }()

	ctx, cancel := context.WithCancel(context.Background())
	drained := make(chan struct{})
	go func() {
		drainOnCancel(ctx, srv)
		close(drained)
	}()

	respCh := make(chan *http.Response, 1)
	go func() {
		resp, getErr := http.Get("http://" + ln.Addr().String())
		if getErr == nil {
			respCh <- resp
		}
	}()

	// Let the request reach the handler, then trigger shutdown while it
	// is still in flight.
	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
	close(release)

	select {
	case resp := <-respCh:
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight request was cut off during shutdown")
	}

	require.ErrorIs(t, <-serveErr, http.ErrServerClosed)

	select {
	case <-drained:
	case <-time.After(2 * time.Second):
		t.Fatal("drain did not complete")
	}
}
