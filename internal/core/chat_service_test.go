package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

// newOfflineService wires the pipeline with no credential and no transcript
// store; AnswerQuery never touches either.
func newOfflineService() *ChatService {
	logger := zap.NewNop()
	return NewChatService(
		nil,
		NewClassifier(),
		NewAssembler(),
		NewProducer("", time.Second, logger),
		testTables(10),
		Defaults{Model: "gpt-3.5-turbo", Temperature: 0.7},
		logger,
	)
}

func TestAnswerQueryDomainOverride(t *testing.T) {
	s := newOfflineService()

	// Without a filter the query matches no domain keyword, so all four
	// domains apply and tax_compliance is primary.
	result := s.AnswerQuery(context.Background(), TurnRequest{Query: "tell me about invoices"})
	assert.Equal(t, DomainOrder, result.QueryContext.RelevantDomains)
	assert.Equal(t, DomainTaxCompliance, result.QueryContext.PrimaryDomain)

	// The filter replaces the classified domains, which changes the canned
	// response and the default chart kind.
	result = s.AnswerQuery(context.Background(), TurnRequest{
		Query:          "tell me about invoices",
		SelectedDomain: DomainFraudDetection,
	})
	assert.Equal(t, []string{DomainFraudDetection}, result.QueryContext.RelevantDomains)
	assert.Equal(t, DomainFraudDetection, result.QueryContext.PrimaryDomain)
	assert.Equal(t, mockResponsesEN["invoices_fraud_detection"], result.Answer.ResponseText)
	assert.Equal(t, "distribution", result.Answer.VisualizationType)
}

func TestAnswerQueryDomainOverrideSentinel(t *testing.T) {
	s := newOfflineService()

	for _, sentinel := range []string{"", "All", "all"} {
		result := s.AnswerQuery(context.Background(), TurnRequest{
			Query:          "tell me about invoices",
			SelectedDomain: sentinel,
		})
		assert.Equal(t, DomainOrder, result.QueryContext.RelevantDomains, "sentinel %q", sentinel)
	}
}

func TestAnswerQueryDomainOverrideIsCaseInsensitive(t *testing.T) {
	s := newOfflineService()

	result := s.AnswerQuery(context.Background(), TurnRequest{
		Query:          "tell me about invoices",
		SelectedDomain: "Fraud_Detection",
	})
	require.Equal(t, []string{DomainFraudDetection}, result.QueryContext.RelevantDomains)
}

func TestAnswerQueryTableAndDomainOverrideTogether(t *testing.T) {
	s := newOfflineService()

	result := s.AnswerQuery(context.Background(), TurnRequest{
		Query:          "what changed recently",
		SelectedTable:  dataset.TableAuditLogs,
		SelectedDomain: DomainFraudDetection,
	})
	assert.Equal(t, dataset.TableAuditLogs, result.QueryContext.PrimaryTable)
	assert.Equal(t, DomainFraudDetection, result.QueryContext.PrimaryDomain)
	assert.Equal(t, mockResponsesEN["audit_logs_fraud_detection"], result.Answer.ResponseText)
}
