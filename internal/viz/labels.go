package viz

// Axis and title label translations. Unknown keys fall through unchanged.
var labelTranslations = map[string]map[string]string{
	"en": {
		"invoice_count":           "Invoice Count",
		"invoice_amount":          "Invoice Amount",
		"tax_amount":              "Tax Amount",
		"date":                    "Date",
		"month":                   "Month",
		"year":                    "Year",
		"quarter":                 "Quarter",
		"emirate":                 "Emirate",
		"anomaly_type":            "Anomaly Type",
		"anomaly_count":           "Anomaly Count",
		"count":                   "Count",
		"percentage":              "Percentage",
		"amount":                  "Amount",
		"risk_score":              "Risk Score",
		"taxpayer":                "Taxpayer",
		"sector":                  "Sector",
		"compliance_score":        "Compliance Score",
		"invoice_type":            "Invoice Type",
		"vat_category":            "VAT Category",
		"comparison":              "Comparison",
		"distribution":            "Distribution",
		"geographic_distribution": "Geographic Distribution",
		"over_time":               "Over Time",
		"by":                      "by",
	},
	"ar": {
		"invoice_count":           "عدد الفواتير",
		"invoice_amount":          "مبلغ الفاتورة",
		"tax_amount":              "مبلغ الضريبة",
		"date":                    "تاريخ",
		"month":                   "شهر",
		"year":                    "سنة",
		"quarter":                 "ربع سنة",
		"emirate":                 "إمارة",
		"anomaly_type":            "نوع الشذوذ",
		"anomaly_count":           "عدد الشذوذ",
		"count":                   "عدد",
		"percentage":              "نسبة مئوية",
		"amount":                  "مبلغ",
		"risk_score":              "درجة المخاطرة",
		"taxpayer":                "دافع الضرائب",
		"sector":                  "قطاع",
		"compliance_score":        "درجة الامتثال",
		"invoice_type":            "نوع الفاتورة",
		"vat_category":            "فئة ضريبة القيمة المضافة",
		"comparison":              "مقارنة",
		"distribution":            "توزيع",
		"geographic_distribution": "التوزيع الجغرافي",
		"over_time":               "مع مرور الوقت",
		"by":                      "حسب",
	},
}

func translate(key, lang string) string {
	if labels, ok := labelTranslations[lang]; ok {
		if label, ok := labels[key]; ok {
			return label
		}
	}
	return key
}
