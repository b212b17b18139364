package services

import (
	"context"
	"fmt"
)

// maxProbedCollections caps the collection names reported by a store probe.
const maxProbedCollections = 10

// maxProbeMessage caps the length of error text embedded in a probe report.
const maxProbeMessage = 80

// StoreProber is the minimal store surface the diagnostic probe needs.
type StoreProber interface {
	Ping(ctx context.Context) error
	DatabaseName() string
	ListCollections(ctx context.Context, limit int) ([]string, error)
}

// StoreReport is the outcome of a diagnostic store probe. Probe failures are
// carried as truncated message strings inside the report, never as errors.
type StoreReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticService reports backend and store liveness.
type DiagnosticService struct {
	prober StoreProber
	urlSet bool
}

// NewDiagnosticService creates a new DiagnosticService. urlSet reports
// whether a store URL was configured, without exposing the URL itself.
func NewDiagnosticService(prober StoreProber, urlSet bool) *DiagnosticService {
	return &DiagnosticService{
		prober: prober,
		urlSet: urlSet,
	}
}

// Probe checks store connectivity and lists up to 10 collection names. It
// never fails: every error is captured into the report with its message
// truncated to 80 characters.
func (s *DiagnosticService) Probe(ctx context.Context) StoreReport {
	report := StoreReport{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if s.urlSet {
		report.DatabaseURL = "set"
	}
	if s.prober == nil {
		return report
	}

	if err := s.prober.Ping(ctx); err != nil {
		report.Database = fmt.Sprintf("error: %s", truncate(err.Error(), maxProbeMessage))
		return report
	}
	report.Database = "connected"
	report.DatabaseName = s.prober.DatabaseName()
	report.ConnectionStatus = "connected"

	names, err := s.prober.ListCollections(ctx, maxProbedCollections)
	if err != nil {
		report.Database = fmt.Sprintf("connected but error: %s", truncate(err.Error(), maxProbeMessage))
		return report
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = "connected and working"
	return report
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
