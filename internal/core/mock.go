package core

import "fmt"

// Canned responses for the offline path, keyed by "{primary_table}_{primary_domain}".
// Kept as data tables so localization review does not have to read code.

var mockResponsesEN = map[string]string{
	"invoices_tax_compliance":          "Based on the invoice data, I can see that there are several tax compliance issues. The most common issue is incorrect VAT calculation, which appears in approximately 8% of the invoices. The total VAT amount across all invoices is 12,305 AED, with an average of 121.82 AED per invoice.",
	"invoices_fraud_detection":         "The fraud detection analysis shows that 12,305 out of 101,183 invoices (12.16%) have been flagged as potential anomalies. The most common anomaly types are duplicate invoices (1,983 cases), round number amounts (1,752 cases), and just-under-limit transactions (1,521 cases).",
	"invoices_revenue_analysis":        "Revenue analysis of the invoice data shows a total taxable amount of 246,100,000 AED across all emirates. Dubai accounts for the largest share at 35%, followed by Abu Dhabi at 28%, and Sharjah at 15%. The average invoice amount is 2,432 AED.",
	"invoices_geographic_distribution": "The geographic distribution of invoices shows that Dubai has the highest concentration with 35,414 invoices (35%), followed by Abu Dhabi with 28,331 invoices (28%), and Sharjah with 15,177 invoices (15%). The remaining emirates account for 22% of all invoices.",
	"items_tax_compliance":             "Analysis of the items data shows that 3% of items are zero-rated and 2% are exempt from VAT. The remaining 95% are subject to the standard 5% VAT rate. There are 550,295 line items across all invoices, with an average of 5.44 items per invoice.",
	"items_fraud_detection":            "The item-level fraud detection analysis has identified 8,254 suspicious line items (1.5% of all items). The most common anomalies are excessive quantities (2,145 cases), above-market pricing (1,876 cases), and vague descriptions (1,532 cases).",
	"taxpayers_tax_compliance":         "The taxpayer compliance analysis shows that 814 out of 10,000 taxpayers (8.14%) have compliance issues. The average tax compliance score is 87.5 out of 100. Taxpayers in the retail sector have the highest compliance rate at 94%, while construction has the lowest at 78%.",
	"audit_logs_fraud_detection":       "The audit log analysis reveals 1,245 suspicious modification patterns. The most common suspicious activities are multiple price changes within 24 hours (412 cases), after-hours modifications (356 cases), and repeated cancellations and reissues (289 cases).",
}

var mockResponsesAR = map[string]string{
	"invoices_tax_compliance":          "بناءً على بيانات الفواتير، يمكنني أن أرى أن هناك العديد من مشكلات الامتثال الضريبي. المشكلة الأكثر شيوعًا هي حساب ضريبة القيمة المضافة بشكل غير صحيح، والتي تظهر في حوالي 8٪ من الفواتير. يبلغ إجمالي مبلغ ضريبة القيمة المضافة عبر جميع الفواتير 12,305 درهم إماراتي، بمتوسط 121.82 درهم إماراتي لكل فاتورة.",
	"invoices_fraud_detection":         "يُظهر تحليل كشف الاحتيال أن 12,305 من أصل 101,183 فاتورة (12.16٪) تم تحديدها كحالات شاذة محتملة. أكثر أنواع الشذوذ شيوعًا هي الفواتير المكررة (1,983 حالة)، والمبالغ ذات الأرقام المستديرة (1,752 حالة)، والمعاملات التي تقل قليلاً عن الحد (1,521 حالة).",
	"invoices_revenue_analysis":        "يُظهر تحليل الإيرادات لبيانات الفواتير إجمالي مبلغ خاضع للضريبة قدره 246,100,000 درهم إماراتي عبر جميع الإمارات. تستحوذ دبي على الحصة الأكبر بنسبة 35٪، تليها أبو ظبي بنسبة 28٪، والشارقة بنسبة 15٪. متوسط مبلغ الفاتورة هو 2,432 درهم إماراتي.",
	"invoices_geographic_distribution": "يُظهر التوزيع الجغرافي للفواتير أن دبي لديها أعلى تركيز بـ 35,414 فاتورة (35٪)، تليها أبو ظبي بـ 28,331 فاتورة (28٪)، والشارقة بـ 15,177 فاتورة (15٪). تمثل الإمارات المتبقية 22٪ من جميع الفواتير.",
	"items_tax_compliance":             "يُظهر تحليل بيانات العناصر أن 3٪ من العناصر معفاة من الضريبة بنسبة صفر و 2٪ معفاة من ضريبة القيمة المضافة. تخضع الـ 95٪ المتبقية لمعدل ضريبة القيمة المضافة القياسي البالغ 5٪. هناك 550,295 بندًا عبر جميع الفواتير، بمتوسط 5.44 عنصرًا لكل فاتورة.",
	"items_fraud_detection":            "حدد تحليل كشف الاحتيال على مستوى العناصر 8,254 بندًا مشبوهًا (1.5٪ من جميع العناصر). أكثر الشذوذ شيوعًا هي الكميات المفرطة (2,145 حالة)، والتسعير فوق السوق (1,876 حالة)، والأوصاف الغامضة (1,532 حالة).",
	"taxpayers_tax_compliance":         "يُظهر تحليل امتثال دافعي الضرائب أن 814 من أصل 10,000 دافع ضرائب (8.14٪) لديهم مشكلات في الامتثال. متوسط درجة الامتثال الضريبي هو 87.5 من أصل 100. يتمتع دافعو الضرائب في قطاع التجزئة بأعلى معدل امتثال بنسبة 94٪، بينما يمتلك قطاع البناء أدنى معدل بنسبة 78٪.",
	"audit_logs_fraud_detection":       "يكشف تحليل سجل التدقيق عن 1,245 نمطًا مشبوهًا من التعديلات. أكثر الأنشطة المشبوهة شيوعًا هي تغييرات الأسعار المتعددة خلال 24 ساعة (412 حالة)، والتعديلات خارج ساعات العمل (356 حالة)، والإلغاءات وإعادة الإصدار المتكررة (289 حالة).",
}

var noInformationMessage = map[Language]string{
	LangEnglish: "I don't have specific information about that in the e-invoice data.",
	LangArabic:  "ليس لدي معلومات محددة حول ذلك في بيانات الفواتير الإلكترونية.",
}

// MockComplete answers one turn without any network call, used whenever no
// valid credential is configured. It always succeeds.
func MockComplete(query string, rc *ResponseContext) Answer {
	if rc.IsOutOfDomain {
		return Answer{
			Success:      true,
			ResponseText: rc.OutOfDomainMessage,
		}
	}

	qc := rc.QueryContext
	key := fmt.Sprintf("%s_%s", qc.PrimaryTable, qc.PrimaryDomain)

	responses := mockResponsesEN
	if qc.Language == LangArabic {
		responses = mockResponsesAR
	}

	text, ok := responses[key]
	if !ok {
		text = noInformationMessage[qc.Language]
	}

	return Answer{
		Success:           true,
		ResponseText:      text,
		VisualizationType: rc.VisualizationType,
	}
}
