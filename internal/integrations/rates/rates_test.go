package rates

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/realty-service/internal/config"
)

const feed = `<?xml version="1.0" encoding="utf-8"?>
<pmms>
	<week date="2026-10-08">
		<frm30>6.12</frm30>
		<frm15>5.34</frm15>
	</week>
	<week date="2026-10-01">
		<frm30>6.20</frm30>
		<frm15>5.41</frm15>
	</week>
</pmms>`

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestParseXMLResponse(t *testing.T) {
	got, err := parseXMLResponse([]byte(feed))
	require.NoError(t, err)
	assert.Equal(t, "2026-10-08", got.Date)
	assert.Equal(t, 6.12, got.ThirtyYear)
	assert.Equal(t, 5.34, got.FifteenYear)
	assert.Equal(t, "feed", got.Source)
}

func TestParseXMLResponse_Errors(t *testing.T) {
	tests := map[string]string{
		"not xml":       "rates are up",
		"no weeks":      "<pmms></pmms>",
		"missing frm15": `<pmms><week date="x"><frm30>6.1</frm30></week></pmms>`,
		"bad number":    `<pmms><week date="x"><frm30>six</frm30><frm15>5</frm15></week></pmms>`,
		"out of range":  `<pmms><week date="x"><frm30>0</frm30><frm15>5</frm15></week></pmms>`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseXMLResponse([]byte(body))
			assert.Error(t, err)
		})
	}
}

func TestLatestRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/xml")
		io.WriteString(w, feed)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{RateFeedURL: srv.URL}, quietLogger())
	got, err := c.LatestRates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6.12, got.RateFor(30))
	assert.Equal(t, 5.34, got.RateFor(15))
}

func TestLatestRates_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(&config.Config{RateFeedURL: srv.URL}, quietLogger())
	_, err := c.LatestRates(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
