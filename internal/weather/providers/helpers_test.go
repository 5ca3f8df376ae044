package providers

import (
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-prediction/internal/observability"
)

const (
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

func testOptions(baseURL string) Options {
	return Options{
		Client:  &http.Client{Timeout: 5 * time.Second},
		BaseURL: baseURL,
		Metrics: observability.NewMetricsForTesting(),
		Clock:   clockwork.NewFakeClock(),
	}
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set(headerContentType, contentTypeJSON)
	_, _ = w.Write([]byte(body))
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
