package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-deck/pkg/charts"
	"github.com/de-tools/report-deck/pkg/frame"
	"github.com/de-tools/report-deck/pkg/models/api"
	"github.com/de-tools/report-deck/pkg/models/domain"
	"github.com/de-tools/report-deck/pkg/services/viz"
	"github.com/de-tools/report-deck/pkg/store/upstream"
)

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) SaveReport(ctx context.Context, s domain.Session, code string, r io.Reader) (string, error) {
	args := m.Called(ctx, s, code, r)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) ReportPath(s domain.Session) (string, error) {
	args := m.Called(s)
	return args.String(0), args.Error(1)
}

func (m *mockSessionStore) Frame(ctx context.Context, s domain.Session) (*frame.Frame, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*frame.Frame), args.Error(1)
}

func (m *mockSessionStore) Cleanup(ctx context.Context, s domain.Session) {
	m.Called(ctx, s)
}

type mockUpstreamClient struct {
	mock.Mock
}

func (m *mockUpstreamClient) GetFileInfo(ctx context.Context) (upstream.FileInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(upstream.FileInfo), args.Error(1)
}

func (m *mockUpstreamClient) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Answer(ctx context.Context, t domain.ReportType, question, csvPath string) (string, error) {
	args := m.Called(ctx, t, question, csvPath)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) ChartFromText(ctx context.Context, f *frame.Frame, text string) (*charts.Figure, error) {
	args := m.Called(ctx, f, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*charts.Figure), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	sessions := new(mockSessionStore)
	up := new(mockUpstreamClient)
	gateway := new(mockGateway)

	reportFrame := frame.New(
		[]string{"Name", "Total sales", "Territory", "Payment terms", "Group", "Billing city"},
		[][]string{{"Acme", "1200", "North", "Net 30", "Retail", "Austin"}},
	)
	sessions.On("Frame", mock.Anything, domain.Session{ID: "u1"}).Return(reportFrame, nil)
	sessions.On("ReportPath", domain.Session{ID: "u1"}).Return("/uploads/u1/top_customers.csv", nil)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Sessions: sessions,
			Upstream: up,
			Renderer: viz.NewRenderer(),
			Gateway:  gateway,
		},
	})
	testServer := httptest.NewServer(webAPI.router)
	defer testServer.Close()

	t.Run("GetReport", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/sessions/u1/report")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var report api.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, "TOP_CUSTOMERS", report.Type)
		assert.Equal(t, "Top Customers", report.DisplayName)
	})

	t.Run("GetPanels", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/sessions/u1/report/panels")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var panels []api.Panel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&panels))
		assert.Len(t, panels, 4)
	})

	t.Run("ExportPanel", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/sessions/u1/report/panels/0/export")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	})

	t.Run("UnknownRoute", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/nope")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestNewWebAPIShutdownTimeout(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	configured := NewWebAPI(logger, Config{Addr: ":0", ShutdownTimeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, configured.shutdownTimeout)

	fallback := NewWebAPI(logger, Config{Addr: ":0"})
	assert.Equal(t, defaultShutdownTimeout, fallback.shutdownTimeout)
}
