package core

import (
	"strings"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

// Classifier routes a raw query to its language, relevant tables, and relevant
// analytical domains using static keyword membership tests. It holds no state
// beyond the keyword tables and is safe for concurrent use.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// DetectLanguage reports Arabic if the query contains any character in the
// Arabic Unicode blocks, English otherwise. Mixed-language queries are treated
// as Arabic.
func (c *Classifier) DetectLanguage(query string) Language {
	for _, r := range query {
		if (r >= 0x0600 && r <= 0x06FF) ||
			(r >= 0x0750 && r <= 0x077F) ||
			(r >= 0x08A0 && r <= 0x08FF) {
			return LangArabic
		}
	}
	return LangEnglish
}

// Classify derives the full query context. If selectedTable names a table
// (anything but the "all" sentinel), it is used verbatim as the sole relevant
// table and keyword search is bypassed; domain classification always runs.
func (c *Classifier) Classify(query string, selectedTable string) QueryContext {
	lang := c.DetectLanguage(query)
	domains := c.relevantDomains(query, lang)

	var tables []string
	if selectedTable != "" && !strings.EqualFold(selectedTable, "all") {
		tables = []string{strings.ToLower(selectedTable)}
	} else {
		tables = c.relevantTables(query, lang)
	}

	return QueryContext{
		Query:           query,
		Language:        lang,
		RelevantTables:  tables,
		RelevantDomains: domains,
		PrimaryTable:    tables[0],
		PrimaryDomain:   domains[0],
	}
}

func (c *Classifier) relevantTables(query string, lang Language) []string {
	queryLower := strings.ToLower(query)

	var tables []string
	for _, table := range dataset.Order {
		if containsAny(queryLower, tableKeywords[table][lang]) {
			tables = append(tables, table)
		}
	}

	// Second chance: match field names with underscores spelled as spaces.
	if len(tables) == 0 {
		for _, table := range dataset.Order {
			for _, field := range tableFields[table] {
				if strings.Contains(queryLower, strings.ReplaceAll(field, "_", " ")) {
					tables = append(tables, table)
					break
				}
			}
		}
	}

	if len(tables) == 0 {
		tables = []string{dataset.TableInvoices}
	}
	return tables
}

// relevantDomains returns every domain with a keyword hit, or all domains when
// nothing matches. The all-domains fallback is deliberate: an unclassified
// query gets no domain constraint rather than an arbitrary single domain.
func (c *Classifier) relevantDomains(query string, lang Language) []string {
	queryLower := strings.ToLower(query)

	var domains []string
	for _, domain := range DomainOrder {
		if containsAny(queryLower, domainKeywords[domain][lang]) {
			domains = append(domains, domain)
		}
	}

	if len(domains) == 0 {
		domains = append(domains, DomainOrder...)
	}
	return domains
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
