package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

func TestMockCompleteCannedResponse(t *testing.T) {
	rc := &ResponseContext{
		VisualizationType: "comparison",
		QueryContext: QueryContext{
			Language:      LangEnglish,
			PrimaryTable:  dataset.TableInvoices,
			PrimaryDomain: DomainTaxCompliance,
		},
	}

	answer := MockComplete("vat compliance of invoices", rc)

	assert.True(t, answer.Success)
	assert.Equal(t, mockResponsesEN["invoices_tax_compliance"], answer.ResponseText)
	assert.Equal(t, "comparison", answer.VisualizationType)
}

func TestMockCompleteArabic(t *testing.T) {
	rc := &ResponseContext{
		QueryContext: QueryContext{
			Language:      LangArabic,
			PrimaryTable:  dataset.TableAuditLogs,
			PrimaryDomain: DomainFraudDetection,
		},
	}

	answer := MockComplete("سجلات التدقيق المشبوهة", rc)
	assert.True(t, answer.Success)
	assert.Equal(t, mockResponsesAR["audit_logs_fraud_detection"], answer.ResponseText)
}

func TestMockCompleteNoInformationFallback(t *testing.T) {
	// items + geographic_distribution has no canned entry.
	rc := &ResponseContext{
		QueryContext: QueryContext{
			Language:      LangEnglish,
			PrimaryTable:  dataset.TableItems,
			PrimaryDomain: DomainGeographicDistribution,
		},
	}

	answer := MockComplete("items by emirate", rc)
	assert.True(t, answer.Success)
	assert.Equal(t, noInformationMessage[LangEnglish], answer.ResponseText)
}

func TestMockCompleteOutOfDomain(t *testing.T) {
	rc := &ResponseContext{
		IsOutOfDomain:      true,
		OutOfDomainMessage: outOfDomainMessage[LangArabic],
		QueryContext:       QueryContext{Language: LangArabic},
	}

	answer := MockComplete("الطقس في دبي", rc)
	assert.True(t, answer.Success)
	assert.Equal(t, outOfDomainMessage[LangArabic], answer.ResponseText)
	assert.Empty(t, answer.VisualizationType)
}

// The offline path end to end: classify, assemble, answer.
func TestMockPipeline(t *testing.T) {
	c := NewClassifier()
	a := NewAssembler()
	tables := testTables(10)

	qc := c.Classify("Show me the distribution of invoices by emirate", "")
	rc := a.Prepare(qc, tables)
	answer := MockComplete(qc.Query, rc)

	assert.True(t, answer.Success)
	assert.Equal(t, mockResponsesEN["invoices_geographic_distribution"], answer.ResponseText)
	assert.Equal(t, "distribution", answer.VisualizationType)
}
