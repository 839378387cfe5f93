package server

import (
	"encoding/json"
	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rycus86/mbta-route-tables/pkg/tables"
	"net/http"
	"strings"
	"time"
)

var (
	tablesHistogram = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Name: "req_tables",
		Help: "Histogram for serving requests related to route and schedule tables",
	}, []string{"endpoint_type"})
)

func init() {
	prometheus.MustRegister(tablesHistogram)
}

type jsonTable struct {
	Table tables.Table `json:"table"`
	Error string       `json:"error,omitempty"`
}

// TableHandler serves the result of build as JSON, HTML or plain text depending on the Accept header.
func (s *Server) TableHandler(endpointType string, title func(*http.Request) string, build func(*http.Request) tables.Result) func(http.ResponseWriter, *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		reqStart := time.Now()
		defer func() {
			tablesHistogram.With(prometheus.Labels{"endpoint_type": endpointType}).Observe(time.Since(reqStart).Seconds())
		}()

		result := build(request)
		table := result.Render()
		status := statusFor(result.Kind)

		accept := request.Header.Get("Accept")

		if strings.Contains(accept, "application/json") {
			writer.Header().Add("Content-Type", "application/json")
			if result.OK() {
				writer.Header().Add("Cache-Control", "public, max-age=60")
			}
			writer.WriteHeader(status)

			payload := jsonTable{Table: table}
			if !result.OK() {
				payload.Error = result.Kind.String()
			}
			json.NewEncoder(writer).Encode(payload)
		} else if accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*") {
			writer.Header().Add("Content-Type", "text/html; charset=utf-8")
			writer.WriteHeader(status)

			if err := s.renderer.Render(writer, title(request), table); err != nil {
				glog.Errorf("Failed to render %s table: %v", endpointType, err)
			}
		} else {
			writer.Header().Add("Content-Type", "text/plain; charset=utf-8")
			writer.WriteHeader(status)

			if err := WriteText(writer, table); err != nil {
				glog.Errorf("Failed to write %s table: %v", endpointType, err)
			}
		}
	}
}

func statusFor(kind tables.ErrorKind) int {
	switch kind {
	case tables.KindNone:
		return http.StatusOK
	case tables.KindNetwork:
		return http.StatusBadGateway
	case tables.KindEmptyDataset:
		return http.StatusNotFound
	case tables.KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleHealth(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	json.NewEncoder(writer).Encode(map[string]string{"status": "ok"})
}
