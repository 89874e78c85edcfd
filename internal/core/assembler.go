package core

import (
	"fmt"
	"strings"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

// MaxSampleRows bounds how many rows of each relevant table accompany the
// prompt.
const MaxSampleRows = 5

// Assembler turns a classified query into the full response context: the
// out-of-domain gate, the system prompt, the suggested chart kind, and bounded
// data samples.
type Assembler struct{}

func NewAssembler() *Assembler {
	return &Assembler{}
}

// Prepare builds the response context for one turn. An out-of-domain query
// short-circuits: only IsOutOfDomain and OutOfDomainMessage are populated.
func (a *Assembler) Prepare(qc QueryContext, tables dataset.Set) *ResponseContext {
	if a.IsOutOfDomain(qc.Query) {
		return &ResponseContext{
			IsOutOfDomain:      true,
			OutOfDomainMessage: outOfDomainMessage[qc.Language],
			QueryContext:       qc,
		}
	}

	rc := &ResponseContext{
		SystemPrompt:      a.SystemPrompt(qc),
		VisualizationType: a.VisualizationType(qc),
		DataSamples:       map[string][]dataset.Record{},
		QueryContext:      qc,
	}

	for _, name := range qc.RelevantTables {
		table := tables.Get(name)
		if table.Empty() {
			continue
		}
		rc.DataSamples[name] = table.Sample(MaxSampleRows)
		rc.SampleOrder = append(rc.SampleOrder, name)
	}

	return rc
}

// IsOutOfDomain reports whether the query mentions a topic that is obviously
// unrelated to e-invoicing. Both language lists are checked against every
// query.
func (a *Assembler) IsOutOfDomain(query string) bool {
	queryLower := strings.ToLower(query)
	for _, lang := range []Language{LangEnglish, LangArabic} {
		for _, topic := range outOfDomainTopics[lang] {
			if strings.Contains(queryLower, topic) {
				return true
			}
		}
	}
	return false
}

// SystemPrompt concatenates, in order: the general instruction, one
// description per relevant table that has one registered, and every constraint
// sentence of every relevant domain prefixed with a bullet. The order is fixed
// for reproducibility.
func (a *Assembler) SystemPrompt(qc QueryContext) string {
	var b strings.Builder
	b.WriteString(generalInstruction[qc.Language])
	b.WriteString("\n\n")

	for _, table := range qc.RelevantTables {
		if desc, ok := tableDescriptions[table]; ok {
			b.WriteString(desc[qc.Language])
			b.WriteString("\n")
		}
	}

	for _, domain := range qc.RelevantDomains {
		constraints, ok := domainConstraints[domain]
		if !ok {
			continue
		}
		for _, constraint := range constraints[qc.Language] {
			b.WriteString("- ")
			b.WriteString(constraint)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// VisualizationType picks a chart kind from the query keywords, falling back
// to the primary domain's default. An empty result means no chart suggestion.
func (a *Assembler) VisualizationType(qc QueryContext) string {
	queryLower := strings.ToLower(qc.Query)
	for _, kind := range vizOrder {
		if containsAny(queryLower, vizKeywords[kind][qc.Language]) {
			return kind
		}
	}
	return domainDefaultViz[qc.PrimaryDomain]
}

// FormatForLanguage wraps Arabic responses for right-to-left rendering. No
// other locale formatting is applied.
func FormatForLanguage(response string, lang Language) string {
	if lang == LangArabic {
		return fmt.Sprintf(`<div dir="rtl">%s</div>`, response)
	}
	return response
}
