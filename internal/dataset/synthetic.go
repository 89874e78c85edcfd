package dataset

import (
	"fmt"
	"math/rand"
	"time"
)

// Synthetic generates illustrative random data with the same schemas as the
// real exports. It exists so the service can run and be demonstrated without
// the data directory; it is not a substitute for real data.
func Synthetic() Set {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return Set{
		TableInvoices:  syntheticInvoices(rng, 100),
		TableItems:     syntheticItems(rng, 300),
		TableTaxpayers: syntheticTaxpayers(rng, 50),
		TableAuditLogs: syntheticAuditLogs(rng, 200),
	}
}

var emirates = []string{"Dubai", "Abu Dhabi", "Sharjah", "Ajman", "Fujairah", "Ras Al Khaimah", "Umm Al Quwain"}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

func syntheticInvoices(rng *rand.Rand, n int) *Table {
	t := &Table{
		Name: TableInvoices,
		Columns: []string{
			"invoice_number", "invoice_datetime", "buyer_emirate", "seller_emirate",
			"invoice_tax_amount", "invoice_without_tax", "invoice_type", "invoice_category",
			"invoice_sales_type", "document_status", "buyer_name", "buyer_trn",
			"seller_name", "seller_trn", "vat_rate", "vat_category",
			"is_anomaly", "anomaly_type", "anomaly_risk_score",
		},
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		isAnomaly := 0.0
		anomalyType := ""
		if rng.Float64() < 0.1 {
			isAnomaly = 1
			anomalyType = pick(rng, "Duplicate", "Round Amount", "Just Under Limit", "Foreign Bank")
		}
		vatRate := 5.0
		vatCategory := "Standard"
		switch r := rng.Float64(); {
		case r < 0.03:
			vatRate, vatCategory = 0.0, "Zero Rated"
		case r < 0.05:
			vatRate, vatCategory = 0.0, "Exempt"
		}
		t.Rows = append(t.Rows, Record{
			"invoice_number":      fmt.Sprintf("INV%03d", i+1),
			"invoice_datetime":    start.AddDate(0, 0, i).Format("2006-01-02"),
			"buyer_emirate":       emirates[rng.Intn(len(emirates))],
			"seller_emirate":      emirates[rng.Intn(len(emirates))],
			"invoice_tax_amount":  50 + rng.Float64()*450,
			"invoice_without_tax": 1000 + rng.Float64()*9000,
			"invoice_type":        pick(rng, "Standard", "Credit Note", "Debit Note"),
			"invoice_category":    pick(rng, "Goods", "Services", "Mixed"),
			"invoice_sales_type":  pick(rng, "B2B", "B2C", "B2G"),
			"document_status":     pick(rng, "Issued", "Paid", "Cancelled"),
			"buyer_name":          fmt.Sprintf("Company %d", i+1),
			"buyer_trn":           fmt.Sprintf("TRN%06d", i+1),
			"seller_name":         fmt.Sprintf("Vendor %d", i%20+1),
			"seller_trn":          fmt.Sprintf("TRN%06d", i%20+1),
			"vat_rate":            vatRate,
			"vat_category":        vatCategory,
			"is_anomaly":          isAnomaly,
			"anomaly_type":        anomalyType,
			"anomaly_risk_score":  rng.Float64(),
		})
	}
	return t
}

func syntheticItems(rng *rand.Rand, n int) *Table {
	t := &Table{
		Name: TableItems,
		Columns: []string{
			"item_id", "invoice_id", "item_name", "item_description", "quantity",
			"unit_price", "line_discount", "line_total", "line_vat_amount", "hs_code",
		},
	}
	for i := 0; i < n; i++ {
		t.Rows = append(t.Rows, Record{
			"item_id":          fmt.Sprintf("ITEM%04d", i+1),
			"invoice_id":       fmt.Sprintf("INV%03d", rng.Intn(100)+1),
			"item_name":        fmt.Sprintf("Product %d", i%50+1),
			"item_description": fmt.Sprintf("Description for Product %d", i%50+1),
			"quantity":         float64(rng.Intn(9) + 1),
			"unit_price":       100 + rng.Float64()*900,
			"line_discount":    rng.Float64() * 50,
			"line_total":       100 + rng.Float64()*4900,
			"line_vat_amount":  5 + rng.Float64()*245,
			"hs_code":          fmt.Sprintf("HS%04d", rng.Intn(9000)+1000),
		})
	}
	return t
}

func syntheticTaxpayers(rng *rand.Rand, n int) *Table {
	t := &Table{
		Name: TableTaxpayers,
		Columns: []string{
			"tax_number", "name", "registration_date", "vat_registration_date",
			"legal_entity_type", "business_size", "sector", "number_of_employees",
			"ownership_type", "tax_compliance_score", "bank_account", "bank_country",
		},
	}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		bankCountry := "UAE"
		if rng.Float64() < 0.2 {
			bankCountry = "Other"
		}
		t.Rows = append(t.Rows, Record{
			"tax_number":            fmt.Sprintf("TRN%06d", i+1),
			"name":                  fmt.Sprintf("Company %d", i+1),
			"registration_date":     start.AddDate(0, 0, i).Format("2006-01-02"),
			"vat_registration_date": start.AddDate(0, 0, i+14).Format("2006-01-02"),
			"legal_entity_type":     pick(rng, "LLC", "FZE", "Sole Proprietorship", "Partnership"),
			"business_size":         pick(rng, "Small", "Medium", "Large"),
			"sector":                pick(rng, "Retail", "Manufacturing", "Services", "Construction", "Technology"),
			"number_of_employees":   float64(rng.Intn(495) + 5),
			"ownership_type":        pick(rng, "Local", "Foreign", "Mixed"),
			"tax_compliance_score":  60 + rng.Float64()*40,
			"bank_account":          fmt.Sprintf("AE%09d", rng.Intn(900000000)+100000000),
			"bank_country":          bankCountry,
		})
	}
	return t
}

func syntheticAuditLogs(rng *rand.Rand, n int) *Table {
	t := &Table{
		Name: TableAuditLogs,
		Columns: []string{
			"log_id", "invoice_id", "timestamp", "user_id", "action_type",
			"field_changed", "old_value", "new_value", "system_notes",
		},
	}
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		fieldChanged := ""
		if rng.Float64() < 0.8 {
			fieldChanged = pick(rng, "Amount", "Status", "Date", "Description")
		}
		t.Rows = append(t.Rows, Record{
			"log_id":        fmt.Sprintf("LOG%05d", i+1),
			"invoice_id":    fmt.Sprintf("INV%03d", rng.Intn(100)+1),
			"timestamp":     start.AddDate(0, 0, i).Format("2006-01-02"),
			"user_id":       fmt.Sprintf("USER%02d", rng.Intn(10)+1),
			"action_type":   pick(rng, "Create", "Update", "Delete", "View"),
			"field_changed": fieldChanged,
			"old_value":     fmt.Sprintf("Old Value %d", i+1),
			"new_value":     fmt.Sprintf("New Value %d", i+1),
			"system_notes":  fmt.Sprintf("System note %d", i+1),
		})
	}
	return t
}
