package core

// Static routing vocabulary. Keyword hits are case-insensitive substring
// matches against the query; lists are not mutually exclusive, and iteration
// order over tables/domains is the only tie-break.

var tableKeywords = map[string]map[Language][]string{
	"invoices": {
		LangEnglish: {"invoice", "invoices", "bill", "bills", "receipt", "receipts", "transaction",
			"transactions", "payment", "payments", "vat", "tax", "emirate", "buyer", "seller"},
		LangArabic: {"فاتورة", "فواتير", "إيصال", "إيصالات", "معاملة", "معاملات", "دفع", "مدفوعات",
			"ضريبة القيمة المضافة", "ضريبة", "إمارة", "مشتري", "بائع"},
	},
	"items": {
		LangEnglish: {"item", "items", "product", "products", "goods", "service", "services",
			"quantity", "price", "unit", "description", "line item"},
		LangArabic: {"عنصر", "عناصر", "منتج", "منتجات", "بضائع", "خدمة", "خدمات",
			"كمية", "سعر", "وحدة", "وصف", "بند"},
	},
	"taxpayers": {
		LangEnglish: {"taxpayer", "taxpayers", "company", "companies", "business", "businesses",
			"vendor", "vendors", "supplier", "suppliers", "customer", "customers", "trn"},
		LangArabic: {"دافع الضرائب", "دافعي الضرائب", "شركة", "شركات", "عمل", "أعمال",
			"بائع", "بائعين", "مورد", "موردين", "عميل", "عملاء", "رقم التسجيل الضريبي"},
	},
	"audit_logs": {
		LangEnglish: {"audit", "log", "logs", "history", "tracking", "changes", "modification",
			"timestamp", "user", "action", "event"},
		LangArabic: {"تدقيق", "سجل", "سجلات", "تاريخ", "تتبع", "تغييرات", "تعديل",
			"طابع زمني", "مستخدم", "إجراء", "حدث"},
	},
}

var domainKeywords = map[string]map[Language][]string{
	DomainTaxCompliance: {
		LangEnglish: {"compliance", "regulation", "law", "legal", "requirement", "rule", "standard",
			"vat", "tax", "authority", "audit", "filing", "report"},
		LangArabic: {"امتثال", "تنظيم", "قانون", "قانوني", "متطلب", "قاعدة", "معيار",
			"ضريبة القيمة المضافة", "ضريبة", "سلطة", "تدقيق", "تقديم", "تقرير"},
	},
	DomainFraudDetection: {
		LangEnglish: {"fraud", "anomaly", "suspicious", "risk", "detection", "unusual", "pattern",
			"outlier", "irregular", "fake", "false", "duplicate", "manipulation"},
		LangArabic: {"احتيال", "شذوذ", "مشبوه", "خطر", "كشف", "غير عادي", "نمط",
			"قيمة متطرفة", "غير منتظم", "مزيف", "خاطئ", "مكرر", "تلاعب"},
	},
	DomainRevenueAnalysis: {
		LangEnglish: {"revenue", "income", "profit", "sales", "financial", "analysis", "trend",
			"forecast", "projection", "growth", "decline", "comparison"},
		LangArabic: {"إيرادات", "دخل", "ربح", "مبيعات", "مالي", "تحليل", "اتجاه",
			"توقع", "إسقاط", "نمو", "انخفاض", "مقارنة"},
	},
	DomainGeographicDistribution: {
		LangEnglish: {"geographic", "location", "region", "emirate", "city", "area", "distribution",
			"map", "spatial", "territory", "zone", "abu dhabi", "dubai", "sharjah", "ajman",
			"umm al quwain", "ras al khaimah", "fujairah"},
		LangArabic: {"جغرافي", "موقع", "منطقة", "إمارة", "مدينة", "منطقة", "توزيع",
			"خريطة", "مكاني", "إقليم", "منطقة", "أبو ظبي", "دبي", "الشارقة", "عجمان",
			"أم القيوين", "رأس الخيمة", "الفجيرة"},
	},
}

// Field names per table, used as a second-chance routing signal: underscores
// are replaced with spaces and the result is substring-matched.
var tableFields = map[string][]string{
	"invoices": {
		"invoice_number", "invoice_datetime", "invoice_type", "invoice_category",
		"invoice_sales_type", "invoice_collection_type", "document_status",
		"buyer_name", "buyer_trn", "buyer_address", "buyer_emirate",
		"seller_name", "seller_trn", "seller_address", "seller_emirate",
		"invoice_discount_amount", "invoice_without_tax", "invoice_tax_amount",
		"vat_rate", "taxable_amount", "emirate_revenue_share", "is_anomaly",
	},
	"items": {
		"item_id", "invoice_id", "item_name", "item_description", "quantity",
		"unit_price", "line_discount", "line_total", "line_vat_amount", "hs_code",
	},
	"taxpayers": {
		"tax_number", "name", "registration_date", "vat_registration_date",
		"legal_entity_type", "business_size", "sector", "number_of_employees",
		"ownership_type", "tax_compliance_score", "bank_account", "bank_country",
	},
	"audit_logs": {
		"log_id", "invoice_id", "timestamp", "user_id", "action_type",
		"field_changed", "old_value", "new_value", "system_notes",
	},
}
