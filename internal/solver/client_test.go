package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/SeamusWaldron/nxcube"
)

func TestSolvePostsRequest(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/solve", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Response{Solution: "U' R'", Length: 2, Method: "kociemba"})
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	resp, err := c.Solve(context.Background(), Request{Size: 3, Scramble: "R U"})
	require.NoError(t, err)
	assert.Equal(t, Request{Size: 3, Scramble: "R U"}, got)
	assert.Equal(t, Response{Solution: "U' R'", Length: 2, Method: "kociemba"}, resp)
}

func TestSolveReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Solve(context.Background(), Request{Size: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestSolveOrFallbackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	c := New(srv.URL, WithLogger(zap.New(core)))

	resp := c.SolveOrFallback(context.Background(), Request{Size: 3, Scramble: "R"})
	assert.Equal(t, Fallback, resp)
	assert.Equal(t, 1, logs.Len())
}

func TestSolveOrFallbackOnTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := New(srv.URL, WithTimeout(50*time.Millisecond))
	resp := c.SolveOrFallback(context.Background(), Request{Size: 3})
	assert.Equal(t, "mock", resp.Method)
	assert.Equal(t, 8, resp.Length)
}

func TestTimeoutLeavesSharedClientAlone(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	shared := &http.Client{}
	c := New(srv.URL, WithHTTPClient(shared), WithTimeout(50*time.Millisecond))
	assert.Zero(t, shared.Timeout)

	_, err := c.Solve(context.Background(), Request{Size: 3})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, shared.Timeout)
}

func TestNilHTTPClientKeepsDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Response{Solution: "R", Length: 1, Method: "test"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithHTTPClient(nil), WithTimeout(time.Second))
	resp, err := c.Solve(context.Background(), Request{Size: 2, Scramble: "R'"})
	require.NoError(t, err)
	assert.Equal(t, "test", resp.Method)
}

func TestSolveOrFallbackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	assert.Equal(t, Fallback, New(srv.URL).SolveOrFallback(context.Background(), Request{Size: 3}))
}

func TestFallbackIsWellFormed(t *testing.T) {
	moves, err := nxcube.ParseMoves(Fallback.Solution)
	require.NoError(t, err)
	assert.Len(t, moves, Fallback.Length)
}

func TestVerify(t *testing.T) {
	ok, err := Verify(3, "R U", "U' R'")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Verify(3, "R U", "R' U'")
	require.NoError(t, err)
	assert.False(t, ok)

	// The fallback is the sexy move twice, which does not undo a single R.
	ok, err = Verify(3, "R", Fallback.Solution)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyErrors(t *testing.T) {
	_, err := Verify(1, "", "")
	assert.ErrorIs(t, err, nxcube.ErrConfiguration)

	_, err = Verify(3, "R Q", "")
	assert.ErrorIs(t, err, nxcube.ErrInvalidMove)

	_, err = Verify(3, "R", "R'2")
	assert.ErrorIs(t, err, nxcube.ErrInvalidMove)
}
