package ipfs

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/hofa/base/ctx"
)

func TestPin(t *testing.T) {
	req := require.New(t)
	var pinned []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v0/add", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("pin"))
		require.Equal(t, "1", r.URL.Query().Get("cid-version"))
		reader, err := r.MultipartReader()
		require.NoError(t, err)
		part, err := reader.NextPart()
		require.NoError(t, err)
		content, err := io.ReadAll(part)
		require.NoError(t, err)
		pinned = append(pinned, string(content))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Name":"file","Hash":"bafynode","Size":"7"}`))
	}))
	defer server.Close()

	pinner := New(strings.TrimPrefix(server.URL, "http://"), 1)
	cid, err := pinner.Pin(ctx.Background(), strings.NewReader("artwork"), "png")
	req.NoError(err)
	req.Equal("bafynode", cid)

	cid, err = pinner.PinJson(ctx.Background(), map[string]string{"name": "Sunset"})
	req.NoError(err)
	req.Equal("bafynode", cid)
	req.Equal([]string{"artwork", `{"name":"Sunset"}`}, pinned)
}

func TestPinFailed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"Message":"repo locked","Code":0,"Type":"error"}`))
	}))
	defer server.Close()

	_, err := New(strings.TrimPrefix(server.URL, "http://"), 0).Pin(ctx.Background(), strings.NewReader("artwork"), "png")
	require.Error(t, err)
}
