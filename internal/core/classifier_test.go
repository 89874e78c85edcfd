package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

func TestDetectLanguage(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name  string
		query string
		want  Language
	}{
		{"english", "What is the total VAT collected in Dubai?", LangEnglish},
		{"arabic", "ما هو إجمالي ضريبة القيمة المضافة المحصلة في دبي؟", LangArabic},
		{"mixed treated as arabic", "total VAT في دبي", LangArabic},
		{"empty", "", LangEnglish},
		{"digits and punctuation", "12345 !?", LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.DetectLanguage(tt.query))
		})
	}
}

func TestClassifyTableRouting(t *testing.T) {
	c := NewClassifier()

	t.Run("keyword match", func(t *testing.T) {
		qc := c.Classify("Show me all invoices from Dubai", "")
		assert.Equal(t, dataset.TableInvoices, qc.PrimaryTable)
		assert.Contains(t, qc.RelevantTables, dataset.TableInvoices)
	})

	t.Run("multiple tables in declaration order", func(t *testing.T) {
		qc := c.Classify("invoice items by quantity", "")
		require.True(t, len(qc.RelevantTables) >= 2)
		assert.Equal(t, dataset.TableInvoices, qc.RelevantTables[0])
		assert.Equal(t, dataset.TableItems, qc.RelevantTables[1])
	})

	t.Run("arabic keyword match", func(t *testing.T) {
		qc := c.Classify("أظهر لي جميع الفواتير", "")
		assert.Equal(t, LangArabic, qc.Language)
		assert.Equal(t, dataset.TableInvoices, qc.PrimaryTable)
	})

	t.Run("field name with spaces as second chance", func(t *testing.T) {
		// "hs code" only matches via the items field list.
		qc := c.Classify("group totals by hs code", "")
		assert.Equal(t, dataset.TableItems, qc.PrimaryTable)
	})

	t.Run("defaults to invoices", func(t *testing.T) {
		qc := c.Classify("tell me something interesting", "")
		assert.Equal(t, []string{dataset.TableInvoices}, qc.RelevantTables)
	})
}

func TestClassifySelectedTableOverride(t *testing.T) {
	c := NewClassifier()

	t.Run("override bypasses keyword search", func(t *testing.T) {
		qc := c.Classify("Show me all invoices", "taxpayers")
		assert.Equal(t, []string{dataset.TableTaxpayers}, qc.RelevantTables)
		assert.Equal(t, dataset.TableTaxpayers, qc.PrimaryTable)
	})

	t.Run("override is case insensitive", func(t *testing.T) {
		qc := c.Classify("anything", "Audit_Logs")
		assert.Equal(t, []string{dataset.TableAuditLogs}, qc.RelevantTables)
	})

	t.Run("all sentinel keeps keyword search", func(t *testing.T) {
		qc := c.Classify("Show me all invoices", "All")
		assert.Equal(t, dataset.TableInvoices, qc.PrimaryTable)
	})

	t.Run("override does not affect domains", func(t *testing.T) {
		qc := c.Classify("fraud patterns", "items")
		assert.Equal(t, []string{DomainFraudDetection}, qc.RelevantDomains)
	})
}

func TestClassifyDomainRouting(t *testing.T) {
	c := NewClassifier()

	t.Run("single domain", func(t *testing.T) {
		qc := c.Classify("What are the most common anomaly types?", "")
		assert.Equal(t, []string{DomainFraudDetection}, qc.RelevantDomains)
		assert.Equal(t, DomainFraudDetection, qc.PrimaryDomain)
	})

	t.Run("multiple domains in declaration order", func(t *testing.T) {
		qc := c.Classify("revenue trend and compliance issues", "")
		assert.Equal(t, []string{DomainTaxCompliance, DomainRevenueAnalysis}, qc.RelevantDomains)
		assert.Equal(t, DomainTaxCompliance, qc.PrimaryDomain)
	})

	t.Run("no match falls back to all domains", func(t *testing.T) {
		qc := c.Classify("hello there", "")
		assert.Equal(t, DomainOrder, qc.RelevantDomains)
		assert.Equal(t, DomainTaxCompliance, qc.PrimaryDomain)
	})

	t.Run("emirate name routes to geographic", func(t *testing.T) {
		qc := c.Classify("how is business doing in fujairah", "")
		assert.Contains(t, qc.RelevantDomains, DomainGeographicDistribution)
	})
}

// The full routing walkthrough for a representative analytics question.
func TestClassifyDistributionByEmirate(t *testing.T) {
	c := NewClassifier()

	qc := c.Classify("Show me the distribution of invoices by emirate", "")

	assert.Equal(t, LangEnglish, qc.Language)
	assert.Equal(t, dataset.TableInvoices, qc.PrimaryTable)
	assert.Contains(t, qc.RelevantDomains, DomainGeographicDistribution)
}
