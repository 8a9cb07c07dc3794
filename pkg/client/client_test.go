package client

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narasux/perovskite/pkg/model"
)

func newRequest() *model.PredictionRequest {
	return &model.PredictionRequest{
		PerovskiteComposition: model.PerovskiteComposition{
			ASite: model.SiteList{{Name: model.ElementMA, Fraction: 1.0}},
			BSite: model.SiteList{{Name: model.ElementPb, Fraction: 1.0}},
			CSite: model.SiteList{{Name: model.ElementI, Fraction: 1.0}},
		},
		DimensionListOfLayers: 3.0,
		Dimension:             model.Dimension3D,
		SpaceGroup:            model.SpaceGroupCubic,
	}
}

type doerFunc func(req *http.Request) (*http.Response, error)

func (f doerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestSubmitSuccess(t *testing.T) {
	var got model.PredictionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, BandGapPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, "0.512345")
	}))
	defer srv.Close()

	value, err := New(srv.URL).Submit(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.512345, value)
	assert.Equal(t, *newRequest(), got)
}

func TestSubmitAcceptsBandGapEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"band_gap": 1.61}`)
	}))
	defer srv.Close()

	value, err := New(srv.URL).Submit(context.Background(), newRequest())
	require.NoError(t, err)
	assert.Equal(t, 1.61, value)
}

func TestSubmitHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin", user)
		assert.Equal(t, "secret", password)
		assert.Equal(t, "req-1", r.Header.Get(RequestIDHeaderKey))
		_, _ = io.WriteString(w, "1")
	}))
	defer srv.Close()

	ctx := WithRequestID(context.Background(), "req-1")
	_, err := New(srv.URL, WithBasicAuth("admin", "secret")).Submit(ctx, newRequest())
	require.NoError(t, err)
}

func TestSubmitFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "1.0"},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, body: `{"detail": "bad"}`},
		{name: "not json", status: http.StatusOK, body: "<html></html>"},
		{name: "null", status: http.StatusOK, body: "null"},
		{name: "string", status: http.StatusOK, body: `"1.2"`},
		{name: "object without band gap", status: http.StatusOK, body: `{"pce": 1.2}`},
		{name: "empty", status: http.StatusOK, body: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = io.WriteString(w, c.body)
			}))
			defer srv.Close()

			_, err := New(srv.URL).Submit(context.Background(), newRequest())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrPredictionFailed))
		})
	}
}

func TestDecodeValueKeepsNumberError(t *testing.T) {
	_, err := decodeValue([]byte(`"1.2"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnexpectedBody))
	assert.Contains(t, err.Error(), `body "\"1.2\""`)
	assert.Contains(t, err.Error(), "type float64")
	assert.NotContains(t, err.Error(), "BandGap")

	value, err := decodeValue([]byte(`{"band_gap": 1.5}`))
	require.NoError(t, err)
	assert.Equal(t, 1.5, value)
}

func TestSubmitTransportFailure(t *testing.T) {
	refused := errors.New("connection refused")
	doer := doerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, refused
	})

	_, err := New("http://predictor", WithDoer(doer)).Submit(context.Background(), newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPredictionFailed))
	assert.True(t, errors.Is(err, refused))

	var predErr *PredictionError
	require.True(t, errors.As(err, &predErr))
	assert.Equal(t, "send request", predErr.Stage)
}

func TestSubmitRespectsCallerDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(srv.URL).Submit(ctx, newRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPredictionFailed))
}

func TestSubmitRejectsUnencodableRequest(t *testing.T) {
	req := newRequest()
	req.DimensionListOfLayers = math.NaN()

	_, err := New("http://predictor").Submit(context.Background(), req)
	assert.True(t, errors.Is(err, ErrPredictionFailed))
}
