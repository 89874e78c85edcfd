package core

import "github.com/taxtech-ae/einvoice-assistant/internal/dataset"

// Localized strings backing the user-facing surface: example questions and the
// table/domain filter option lists.

var exampleQuestions = map[Language][]string{
	LangEnglish: {
		"What is the total VAT collected in Dubai?",
		"Show me the distribution of invoices by emirate",
		"What are the most common anomaly types in invoices?",
		"Compare tax compliance rates across different sectors",
		"Show me the monthly revenue trend over the past year",
	},
	LangArabic: {
		"ما هو إجمالي ضريبة القيمة المضافة المحصلة في دبي؟",
		"أظهر لي توزيع الفواتير حسب الإمارة",
		"ما هي أنواع الشذوذ الأكثر شيوعًا في الفواتير؟",
		"قارن بين معدلات الامتثال الضريبي عبر القطاعات المختلفة",
		"أظهر لي اتجاه الإيرادات الشهرية على مدار العام الماضي",
	},
}

var tableLabels = map[string]map[Language]string{
	"All":        {LangEnglish: "All Tables", LangArabic: "جميع الجداول"},
	"invoices":   {LangEnglish: "Invoices", LangArabic: "الفواتير"},
	"items":      {LangEnglish: "Items", LangArabic: "العناصر"},
	"taxpayers":  {LangEnglish: "Taxpayers", LangArabic: "دافعي الضرائب"},
	"audit_logs": {LangEnglish: "Audit Logs", LangArabic: "سجلات التدقيق"},
}

var domainLabels = map[string]map[Language]string{
	"All":                        {LangEnglish: "All Domains", LangArabic: "جميع المجالات"},
	DomainTaxCompliance:          {LangEnglish: "Tax Compliance", LangArabic: "الامتثال الضريبي"},
	DomainFraudDetection:         {LangEnglish: "Fraud Detection", LangArabic: "كشف الاحتيال"},
	DomainRevenueAnalysis:        {LangEnglish: "Revenue Analysis", LangArabic: "تحليل الإيرادات"},
	DomainGeographicDistribution: {LangEnglish: "Geographic Distribution", LangArabic: "التوزيع الجغرافي"},
}

// Option is one localized filter entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ExampleQuestions returns the example-question picker entries for a language.
func ExampleQuestions(lang Language) []string {
	if qs, ok := exampleQuestions[lang]; ok {
		return qs
	}
	return exampleQuestions[LangEnglish]
}

// TableOptions returns the table filter list: "All" plus the four tables in
// declaration order.
func TableOptions(lang Language) []Option {
	options := []Option{{Value: "All", Label: label(tableLabels, "All", lang)}}
	for _, name := range dataset.Order {
		options = append(options, Option{Value: name, Label: label(tableLabels, name, lang)})
	}
	return options
}

// DomainOptions returns the domain filter list: "All" plus the four domains in
// declaration order.
func DomainOptions(lang Language) []Option {
	options := []Option{{Value: "All", Label: label(domainLabels, "All", lang)}}
	for _, name := range DomainOrder {
		options = append(options, Option{Value: name, Label: label(domainLabels, name, lang)})
	}
	return options
}

func label(table map[string]map[Language]string, key string, lang Language) string {
	if byLang, ok := table[key]; ok {
		if l, ok := byLang[lang]; ok {
			return l
		}
		return byLang[LangEnglish]
	}
	return key
}
