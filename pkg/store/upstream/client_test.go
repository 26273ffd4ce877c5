package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/models/domain"
)

func TestGetFileInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_file_info/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"u1","url":"https://cdn.example.com/TOP_CUSTOMERS-02JAN25.xlsx","file_name":"TOP_CUSTOMERS"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client())

	info, err := c.GetFileInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", info.UserID)
	assert.Equal(t, "TOP_CUSTOMERS", info.FileName)
}

func TestGetFileInfoErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "missing url",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"user_id":"u1","file_name":"TOP_CUSTOMERS"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, srv.Client())

			_, err := c.GetFileInfo(context.Background())
			assert.ErrorIs(t, err, domain.ErrNoFileInfo)
		})
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("workbook bytes"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	body, err := c.Download(context.Background(), srv.URL+"/file.xlsx")
	require.NoError(t, err)
	defer body.Close()

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "workbook bytes", string(raw))
}

func TestDownloadErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())

	_, err := c.Download(context.Background(), srv.URL+"/missing.xlsx")
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}
