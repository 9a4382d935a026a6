package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSuccessEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/summary", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"command":"summary","warnings":[],"data":{"pid":"42","events":[{"id":1}]},"error":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	env := c.Get(context.Background(), "/summary", nil)
	require.True(t, env.OK)
	require.Nil(t, env.Error)
	require.Equal(t, "42", env.String("pid"))
	require.Len(t, env.List("events"), 1)
}

func TestGetBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"warnings":[{"code":"EMPTY_DB","message":"No parsed events found.","count":1}],"data":null,"error":{"code":"EMPTY_DB","message":"No parsed events found.","hint":"Run build."}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	env := c.Get(context.Background(), "/search", nil)
	require.False(t, env.OK)
	require.True(t, env.EmptyDB())
	require.Equal(t, "No parsed events found.", env.Err().Message)
}

func TestTransportFailureSynthesized(t *testing.T) {
	// Point at a server that has already been shut down.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL, 500*time.Millisecond)
	env := c.Get(context.Background(), "/health", nil)
	require.False(t, env.OK)
	require.NotNil(t, env.Error)
	require.Equal(t, CodeInternal, env.Error.Code)
	require.Equal(t, "Network error.", env.Error.Message)
	require.NotEmpty(t, env.Error.Details)
	require.Contains(t, env.Error.Details, "/health")
}

func TestMalformedPayloadSynthesized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	env := c.Get(context.Background(), "/flow", nil)
	require.False(t, env.OK)
	require.Equal(t, CodeInternal, env.Err().Code)
	require.Contains(t, env.Error.Details, "malformed response")
}

func TestMissingErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"warnings":[],"data":null,"error":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	env := c.Get(context.Background(), "/trace", nil)
	require.False(t, env.OK)
	require.Nil(t, env.Error)
	require.NotNil(t, env.Err())
	require.Equal(t, CodeInternal, env.Err().Code)
}

func TestAskSendsQuestion(t *testing.T) {
	var gotQ string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQ = r.URL.Query().Get("q")
		w.Write([]byte(`{"ok":true,"warnings":[],"data":{"answer":"x"},"error":null}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	env := c.Ask(context.Background(), "who traded with 42?")
	require.True(t, env.OK)
	require.Equal(t, "who traded with 42?", gotQ)
}
