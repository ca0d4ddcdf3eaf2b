// Package chi serves the election query API over HTTP.
package chi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/loksabha/internal/domain/election"
	logpkg "github.com/kailas-cloud/loksabha/internal/logger"
	electionuc "github.com/kailas-cloud/loksabha/internal/usecase/election"
	healthuc "github.com/kailas-cloud/loksabha/internal/usecase/health"
)

// Route paths. They match the legacy public API.
const (
	PathHome          = "/"
	PathRecords       = "/get-all-lokshaba-data"
	PathWinners       = "/get-all-winner-lokshaba-data"
	PathFilterOptions = "/get-filter-data"
	PathPCNames       = "/get-pc-names"
	PathLogo          = "/static/logo"
	PathHealth        = "/health"
	PathMetrics       = "/metrics"
)

// Server holds the HTTP handlers.
type Server struct {
	elections     *electionuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(elections *electionuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		elections:     elections,
		health:        health,
		logger:        logger,
		errorHandlers: defaultErrorHandlers(),
	}
}

// Mount registers all routes on r.
func (s *Server) Mount(r chi.Router) {
	r.Get(PathHome, s.Home)
	r.Get(PathRecords, s.ListRecords)
	r.Post(PathRecords, s.FilterRecords)
	r.Get(PathWinners, s.ListWinners)
	r.Post(PathWinners, s.WinnerAggregate)
	r.Get(PathFilterOptions, s.FilterOptions)
	r.Post(PathPCNames, s.PCNames)
	r.Get(PathLogo, s.PartyLogo)
	r.Get(PathHealth, s.HealthCheck)
	r.Get(PathMetrics, s.Metrics)
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
}

// ListRecords handles GET /get-all-lokshaba-data.
func (s *Server) ListRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.elections.FetchAll(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// FilterRecords handles POST /get-all-lokshaba-data.
func (s *Server) FilterRecords(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	records, err := s.elections.FetchFiltered(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// ListWinners handles GET /get-all-winner-lokshaba-data.
func (s *Server) ListWinners(w http.ResponseWriter, r *http.Request) {
	records, err := s.elections.FetchWinners(r.Context(), election.Query{})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// WinnerAggregate handles POST /get-all-winner-lokshaba-data.
func (s *Server) WinnerAggregate(w http.ResponseWriter, r *http.Request) {
	pie, err := bindPieChart(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter: "+err.Error())
		return
	}
	q, err := decodeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	agg, err := s.elections.FetchWinnerAggregate(r.Context(), q, pie)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("X-Result-Shape", agg.Shape.String())
	writeJSON(w, http.StatusOK, agg.Payload())
}

// FilterOptions handles GET /get-filter-data.
func (s *Server) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.elections.ListFilterOptions(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

// PCNames handles POST /get-pc-names.
func (s *Server) PCNames(w http.ResponseWriter, r *http.Request) {
	q, err := decodeQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	names, err := s.elections.ListConstituencies(r.Context(), q.StateName)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

// PartyLogo handles GET /static/logo. Without partyName it returns the
// party to logo mapping of every record.
func (s *Server) PartyLogo(w http.ResponseWriter, r *http.Request) {
	party, ok, err := bindPartyName(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameter: "+err.Error())
		return
	}

	if !ok {
		entries, err := s.elections.LogoMapping(r.Context())
		if err != nil {
			s.handleDomainError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
		return
	}

	logo, err := s.elections.PartyLogo(r.Context(), party)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", election.LogoContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(logo.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(logo.Data)
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContextOr(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, msgInternal)
}
