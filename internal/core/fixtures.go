package core

// Literal prompt and message fixtures. These are data tables rather than code
// branches so localization review can diff them directly.

var generalInstruction = map[Language]string{
	LangEnglish: "You are an AI assistant specializing in UAE e-invoice data analysis. Provide helpful, accurate information based on the data available. Focus only on e-invoicing, tax compliance, and related financial topics.",
	LangArabic:  "أنت مساعد ذكاء اصطناعي متخصص في تحليل بيانات الفواتير الإلكترونية في الإمارات العربية المتحدة. قدم معلومات مفيدة ودقيقة بناءً على البيانات المتاحة. ركز فقط على الفواتير الإلكترونية والامتثال الضريبي والمواضيع المالية ذات الصلة.",
}

var outOfDomainMessage = map[Language]string{
	LangEnglish: "I can only provide information related to e-invoicing, tax compliance, fraud detection, and financial analysis in the UAE context. For other topics, please consult a different resource.",
	LangArabic:  "يمكنني فقط تقديم معلومات متعلقة بالفواتير الإلكترونية والامتثال الضريبي وكشف الاحتيال والتحليل المالي في سياق الإمارات العربية المتحدة. للموضوعات الأخرى، يرجى الرجوع إلى مصدر مختلف.",
}

var tableDescriptions = map[string]map[Language]string{
	"invoices": {
		LangEnglish: "The invoices table contains information about e-invoice transactions including buyer/seller details, amounts, tax information, and status.",
		LangArabic:  "يحتوي جدول الفواتير على معلومات حول معاملات الفواتير الإلكترونية بما في ذلك تفاصيل المشتري/البائع والمبالغ ومعلومات الضرائب والحالة.",
	},
	"items": {
		LangEnglish: "The items table contains line-item details for each invoice, including product information, quantities, prices, and tax amounts.",
		LangArabic:  "يحتوي جدول العناصر على تفاصيل البنود لكل فاتورة، بما في ذلك معلومات المنتج والكميات والأسعار ومبالغ الضرائب.",
	},
	"taxpayers": {
		LangEnglish: "The taxpayers table contains information about businesses registered for tax purposes, including registration details, business type, and compliance scores.",
		LangArabic:  "يحتوي جدول دافعي الضرائب على معلومات حول الشركات المسجلة لأغراض الضرائب، بما في ذلك تفاصيل التسجيل ونوع الأعمال ودرجات الامتثال.",
	},
	"audit_logs": {
		LangEnglish: "The audit logs table contains records of changes made to invoices, including timestamps, user information, and modification details.",
		LangArabic:  "يحتوي جدول سجلات التدقيق على سجلات التغييرات التي تم إجراؤها على الفواتير، بما في ذلك الطوابع الزمنية ومعلومات المستخدم وتفاصيل التعديل.",
	},
}

var domainConstraints = map[string]map[Language][]string{
	DomainTaxCompliance: {
		LangEnglish: {
			"The response must focus on tax compliance aspects of e-invoices.",
			"Include references to UAE tax regulations when relevant.",
			"Highlight compliance requirements and best practices.",
			"Mention potential compliance issues in the data if applicable.",
		},
		LangArabic: {
			"يجب أن يركز الرد على جوانب الامتثال الضريبي للفواتير الإلكترونية.",
			"قم بتضمين إشارات إلى اللوائح الضريبية في الإمارات العربية المتحدة عند الاقتضاء.",
			"سلط الضوء على متطلبات الامتثال وأفضل الممارسات.",
			"اذكر مشكلات الامتثال المحتملة في البيانات إذا كان ذلك ممكنًا.",
		},
	},
	DomainFraudDetection: {
		LangEnglish: {
			"The response must focus on fraud detection aspects of e-invoices.",
			"Highlight anomaly patterns and risk indicators in the data.",
			"Explain potential fraud scenarios related to the query.",
			"Include fraud prevention recommendations when relevant.",
		},
		LangArabic: {
			"يجب أن يركز الرد على جوانب كشف الاحتيال في الفواتير الإلكترونية.",
			"سلط الضوء على أنماط الشذوذ ومؤشرات المخاطر في البيانات.",
			"اشرح سيناريوهات الاحتيال المحتملة المتعلقة بالاستعلام.",
			"قم بتضمين توصيات منع الاحتيال عند الاقتضاء.",
		},
	},
	DomainRevenueAnalysis: {
		LangEnglish: {
			"The response must focus on revenue analysis aspects of e-invoices.",
			"Include financial metrics and trends from the data.",
			"Provide insights on revenue distribution and patterns.",
			"Compare financial data across different dimensions when relevant.",
		},
		LangArabic: {
			"يجب أن يركز الرد على جوانب تحليل الإيرادات للفواتير الإلكترونية.",
			"قم بتضمين المقاييس والاتجاهات المالية من البيانات.",
			"قدم رؤى حول توزيع الإيرادات والأنماط.",
			"قارن البيانات المالية عبر الأبعاد المختلفة عند الاقتضاء.",
		},
	},
	DomainGeographicDistribution: {
		LangEnglish: {
			"The response must focus on geographic distribution aspects of e-invoices.",
			"Include emirate-specific data and comparisons.",
			"Highlight regional patterns and anomalies.",
			"Reference location-based insights from the data.",
		},
		LangArabic: {
			"يجب أن يركز الرد على جوانب التوزيع الجغرافي للفواتير الإلكترونية.",
			"قم بتضمين بيانات ومقارنات خاصة بالإمارة.",
			"سلط الضوء على الأنماط والشذوذ الإقليمي.",
			"الإشارة إلى الرؤى المستندة إلى الموقع من البيانات.",
		},
	},
}

// Topic words that mark a query as obviously unrelated to e-invoicing. Both
// lists are checked regardless of the detected language.
var outOfDomainTopics = map[Language][]string{
	LangEnglish: {
		"weather", "sports", "entertainment", "movies", "music", "recipes",
		"cooking", "travel", "vacation", "hotel", "flight", "restaurant",
		"politics", "election", "news", "celebrity", "game", "gaming",
	},
	LangArabic: {
		"طقس", "رياضة", "ترفيه", "أفلام", "موسيقى", "وصفات",
		"طبخ", "سفر", "عطلة", "فندق", "رحلة", "مطعم",
		"سياسة", "انتخابات", "أخبار", "مشاهير", "لعبة", "ألعاب",
	},
}

// Visualization kind inference: first group with a keyword hit wins, in this
// order.
var vizOrder = []string{"time_series", "comparison", "distribution", "geographic"}

var vizKeywords = map[string]map[Language][]string{
	"time_series": {
		LangEnglish: {"trend", "over time", "monthly", "yearly", "quarterly", "history", "historical"},
		LangArabic:  {"اتجاه", "مع مرور الوقت", "شهريًا", "سنويًا", "ربع سنوي", "تاريخ", "تاريخي"},
	},
	"comparison": {
		LangEnglish: {"compare", "comparison", "versus", "vs", "against", "difference", "highest", "lowest"},
		LangArabic:  {"قارن", "مقارنة", "مقابل", "ضد", "الفرق", "الأعلى", "الأدنى"},
	},
	"distribution": {
		LangEnglish: {"distribution", "breakdown", "percentage", "proportion", "share", "allocation"},
		LangArabic:  {"توزيع", "تقسيم", "نسبة مئوية", "نسبة", "حصة", "تخصيص"},
	},
	"geographic": {
		LangEnglish: {"map", "location", "emirate", "region", "geographic", "spatial", "area"},
		LangArabic:  {"خريطة", "موقع", "إمارة", "منطقة", "جغرافي", "مكاني", "منطقة"},
	},
}

// Fallback chart kind per primary domain, used only when no visualization
// keyword matched.
var domainDefaultViz = map[string]string{
	DomainTaxCompliance:          "comparison",
	DomainFraudDetection:         "distribution",
	DomainRevenueAnalysis:        "time_series",
	DomainGeographicDistribution: "geographic",
}
