package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
)

// File names expected under the data directory. The audit log file keeps the
// historical name used by the export pipeline.
var tableFiles = map[string]string{
	TableInvoices:  "invoices.csv",
	TableItems:     "items.csv",
	TableTaxpayers: "taxpayers.csv",
	TableAuditLogs: "invoice_audit_logs.csv",
}

// Load reads the CSV files under dir into a Set. Any missing directory, missing
// file, or parse failure makes the loader fall back to synthetic illustrative
// data so that the service always starts. The fallback is logged because it can
// mask real data problems.
func Load(dir string, logger *zap.Logger) Set {
	if _, err := os.Stat(dir); err != nil {
		logger.Warn("data directory not available, generating synthetic data",
			zap.String("dir", dir),
			zap.Error(err))
		return Synthetic()
	}

	set := Set{}
	for _, name := range Order {
		path := filepath.Join(dir, tableFiles[name])
		table, err := loadCSV(name, path)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Warn("table file missing, skipping", zap.String("table", name), zap.String("path", path))
				continue
			}
			logger.Warn("failed to load table, generating synthetic data",
				zap.String("table", name),
				zap.String("path", path),
				zap.Error(err))
			return Synthetic()
		}
		set[name] = table
		logger.Info("loaded table", zap.String("table", name), zap.Int("rows", len(table.Rows)))
	}

	if len(set) == 0 {
		logger.Warn("no table files found, generating synthetic data", zap.String("dir", dir))
		return Synthetic()
	}
	return set
}

func loadCSV(name, path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows, like the export tooling does

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return &Table{Name: name}, nil
	}

	columns := records[0]
	table := &Table{Name: name, Columns: columns}
	for _, raw := range records[1:] {
		row := Record{}
		for i, col := range columns {
			if i >= len(raw) {
				break
			}
			row[col] = parseCell(raw[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// parseCell keeps numeric cells as float64 so aggregation does not have to
// re-parse on every chart render.
func parseCell(s string) any {
	if s == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
