package core

import "github.com/taxtech-ae/einvoice-assistant/internal/dataset"

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

// Analytical domains, in declaration order. Like table order, domain order is
// part of the routing behavior: the first match becomes the primary domain.
const (
	DomainTaxCompliance          = "tax_compliance"
	DomainFraudDetection         = "fraud_detection"
	DomainRevenueAnalysis        = "revenue_analysis"
	DomainGeographicDistribution = "geographic_distribution"
)

var DomainOrder = []string{
	DomainTaxCompliance,
	DomainFraudDetection,
	DomainRevenueAnalysis,
	DomainGeographicDistribution,
}

// QueryContext is the immutable classification of one user query.
type QueryContext struct {
	Query           string   `json:"query"`
	Language        Language `json:"language"`
	RelevantTables  []string `json:"relevant_tables"`
	RelevantDomains []string `json:"relevant_domains"`
	PrimaryTable    string   `json:"primary_table"`
	PrimaryDomain   string   `json:"primary_domain"`
}

// ResponseContext carries everything the answer producer needs for one turn.
// Built fresh per query, never persisted.
type ResponseContext struct {
	IsOutOfDomain      bool
	OutOfDomainMessage string
	SystemPrompt       string
	VisualizationType  string
	// DataSamples holds at most 5 rows per relevant table; tables that are
	// absent or empty are omitted entirely. SampleOrder preserves the
	// relevant-table order for prompt serialization.
	DataSamples  map[string][]dataset.Record
	SampleOrder  []string
	QueryContext QueryContext
}

type ErrorKind string

const (
	ErrMissingAPIKey ErrorKind = "missing_api_key"
	ErrInvalidAPIKey ErrorKind = "invalid_api_key"
	ErrRateLimit     ErrorKind = "rate_limit"
	ErrAPIError      ErrorKind = "api_error"
)

// Answer is the terminal outcome of one turn. Failures are never retried.
type Answer struct {
	Success           bool      `json:"success"`
	ErrorKind         ErrorKind `json:"error,omitempty"`
	Message           string    `json:"message,omitempty"`
	ResponseText      string    `json:"response_text,omitempty"`
	VisualizationType string    `json:"visualization_type,omitempty"`
}
