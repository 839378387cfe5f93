package client

import (
	"context"
	"fmt"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://api-v3.mbta.com"
	DefaultUserAgent = "MBTA route tables (https://github.com/rycus86/mbta-route-tables)"
	DefaultTimeout   = 30 * time.Second

	jsonAPIMediaType = "application/vnd.api+json"
)

type HttpClient struct {
	client  *http.Client
	baseURL string
}

type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to fetch data from %s: HTTP %d", e.URL, e.StatusCode)
}

var (
	requestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mbta_api_request_count",
		Help: "Number of requests sent to an API endpoint",
	}, []string{"endpoint"})
	errorCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mbta_api_error_count",
		Help: "Number of times an API endpoint returned an error",
	}, []string{"endpoint"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mbta_api_request_seconds",
		Help:    "Time taken to fetch and read an API response",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(requestCount, errorCount, requestDuration)
}

func (c *HttpClient) FetchJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := endpointLabel(path)
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	reqStart := time.Now()
	defer func() {
		requestDuration.With(prometheus.Labels{"endpoint": endpoint}).Observe(time.Since(reqStart).Seconds())
	}()

	requestCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
	glog.V(1).Infof("GET %s", target)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return retError(endpoint, err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return retError(endpoint, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return retError(endpoint, &StatusError{URL: target, StatusCode: response.StatusCode})
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return retError(endpoint, fmt.Errorf("failed to read response from %s: %w", target, err))
	}

	return body, nil
}

func retError(endpoint string, err error) ([]byte, error) {
	errorCount.With(prometheus.Labels{"endpoint": endpoint}).Inc()
	return nil, err
}

// endpointLabel keeps the metric cardinality bounded: /stops/place-alfcl becomes /stops.
func endpointLabel(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	return "/" + parts[0]
}

func NewHttpClient(baseURL string, timeout time.Duration) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HttpClient{
		client: &http.Client{
			Timeout:   timeout,
			Transport: newTransport(DefaultUserAgent),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type apiTransport struct {
	UserAgent string
}

func (t *apiTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	request.Header.Set("User-Agent", t.UserAgent)
	request.Header.Set("Accept", jsonAPIMediaType)

	return http.DefaultTransport.RoundTrip(request)
}

func newTransport(userAgent string) http.RoundTripper {
	return &apiTransport{
		UserAgent: userAgent,
	}
}
