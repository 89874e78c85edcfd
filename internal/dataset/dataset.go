// Package dataset holds the four e-invoice data tables in memory. Tables are
// loaded once at startup and are read-only for the lifetime of the process.
package dataset

import "strconv"

// Table names, in declaration order. The classifier and the assembler iterate
// tables in this order, so it is part of the routing behavior.
const (
	TableInvoices  = "invoices"
	TableItems     = "items"
	TableTaxpayers = "taxpayers"
	TableAuditLogs = "audit_logs"
)

// Order is the fixed iteration order over the tables.
var Order = []string{TableInvoices, TableItems, TableTaxpayers, TableAuditLogs}

// Record is one row, keyed by column name. Cells are string or float64.
type Record map[string]any

// String returns the cell as a string. Numeric cells are formatted; missing
// cells return "".
func (r Record) String(column string) string {
	switch v := r[column].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Float returns the cell as a float64 and whether the conversion succeeded.
func (r Record) Float(column string) (float64, bool) {
	switch v := r[column].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

type Table struct {
	Name    string
	Columns []string
	Rows    []Record
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Sample returns up to n leading rows in storage order.
func (t *Table) Sample(n int) []Record {
	if t == nil || n <= 0 {
		return nil
	}
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

// Set is the collection of loaded tables, keyed by table name.
type Set map[string]*Table

// Get returns the named table or nil.
func (s Set) Get(name string) *Table {
	return s[name]
}
