// Package viz selects and aggregates chart data from the primary table.
// Charts are emitted as plain JSON-serializable shapes; rendering is left to
// whatever UI consumes them.
package viz

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/taxtech-ae/einvoice-assistant/internal/dataset"
)

type Kind string

const (
	TimeSeries   Kind = "time_series"
	Comparison   Kind = "comparison"
	Distribution Kind = "distribution"
	Geographic   Kind = "geographic"
)

type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Bubble struct {
	Region string  `json:"region"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Value  float64 `json:"value"`
}

// Chart is the selected shape. Demo is true when the table lacked the columns
// a kind needs and the values are random illustrative filler; consumers must
// never present a demo chart as real data.
type Chart struct {
	Kind    Kind     `json:"kind"`
	Title   string   `json:"title"`
	XLabel  string   `json:"x_label,omitempty"`
	YLabel  string   `json:"y_label,omitempty"`
	Demo    bool     `json:"demo"`
	Points  []Point  `json:"points,omitempty"`
	Bubbles []Bubble `json:"bubbles,omitempty"`
}

// Render builds the chart for the given kind from the table. Returns nil when
// the table is absent or empty. Unrecognized kinds fall back to a comparison
// chart.
func Render(kind Kind, table *dataset.Table, lang string) *Chart {
	if table.Empty() {
		return nil
	}

	switch kind {
	case TimeSeries:
		return timeSeriesChart(table, lang)
	case Distribution:
		return distributionChart(table, lang)
	case Geographic:
		return geographicChart(table, lang)
	case Comparison:
		return comparisonChart(table, lang)
	default:
		return comparisonChart(table, lang)
	}
}

// valueColumn picks the aggregation column by fixed priority: tax amount, then
// untaxed amount, then the binary anomaly flag, then a plain record count.
func valueColumn(table *dataset.Table, lang string) (column, label string) {
	switch {
	case table.HasColumn("invoice_tax_amount"):
		return "invoice_tax_amount", translate("tax_amount", lang)
	case table.HasColumn("invoice_without_tax"):
		return "invoice_without_tax", translate("invoice_amount", lang)
	case table.HasColumn("is_anomaly"):
		return "is_anomaly", translate("anomaly_count", lang)
	default:
		return "", translate("count", lang)
	}
}

// aggregate sums valueCol (or counts rows when valueCol is "") per distinct
// value of categoryCol, preserving first-seen category order.
func aggregate(table *dataset.Table, categoryCol, valueCol string) []Point {
	totals := map[string]float64{}
	var order []string
	for _, row := range table.Rows {
		category := row.String(categoryCol)
		if category == "" {
			continue
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		if valueCol == "" {
			totals[category]++
		} else if v, ok := row.Float(valueCol); ok {
			totals[category] += v
		}
	}

	points := make([]Point, 0, len(order))
	for _, category := range order {
		points = append(points, Point{Label: category, Value: totals[category]})
	}
	return points
}

// sortDescending orders points by value, high to low. The stable sort keeps
// first-seen row order on ties.
func sortDescending(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
}

var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func timeSeriesChart(table *dataset.Table, lang string) *Chart {
	if !table.HasColumn("invoice_datetime") {
		return demoTimeSeries(lang)
	}

	column, label := valueColumn(table, lang)
	if column == "is_anomaly" {
		// The anomaly flag is not a meaningful trend metric; count instead.
		column, label = "", translate("invoice_count", lang)
	}

	totals := map[string]float64{}
	for _, row := range table.Rows {
		t, ok := parseDate(row.String("invoice_datetime"))
		if !ok {
			continue // unparseable dates are dropped
		}
		month := t.Format("2006-01")
		if column == "" {
			totals[month]++
		} else if v, ok := row.Float(column); ok {
			totals[month] += v
		}
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	points := make([]Point, 0, len(months))
	for _, month := range months {
		points = append(points, Point{Label: month, Value: totals[month]})
	}

	return &Chart{
		Kind:   TimeSeries,
		Title:  fmt.Sprintf("%s %s", label, translate("over_time", lang)),
		XLabel: translate("month", lang),
		YLabel: label,
		Points: points,
	}
}

func comparisonChart(table *dataset.Table, lang string) *Chart {
	var categoryCol, categoryLabel string
	switch {
	case table.HasColumn("buyer_emirate"):
		categoryCol, categoryLabel = "buyer_emirate", translate("emirate", lang)
	case table.HasColumn("seller_sector"):
		categoryCol, categoryLabel = "seller_sector", translate("sector", lang)
	case table.HasColumn("invoice_type"):
		categoryCol, categoryLabel = "invoice_type", translate("invoice_type", lang)
	default:
		return demoChart(Comparison, translate("comparison", lang))
	}

	valueCol, valueLabel := valueColumn(table, lang)
	points := aggregate(table, categoryCol, valueCol)
	sortDescending(points)

	return &Chart{
		Kind:   Comparison,
		Title:  fmt.Sprintf("%s %s %s", valueLabel, translate("by", lang), categoryLabel),
		XLabel: categoryLabel,
		YLabel: valueLabel,
		Points: points,
	}
}

func distributionChart(table *dataset.Table, lang string) *Chart {
	var categoryCol, categoryLabel string
	switch {
	case hasNonEmptyValues(table, "anomaly_type"):
		categoryCol, categoryLabel = "anomaly_type", translate("anomaly_type", lang)
	case table.HasColumn("buyer_emirate"):
		categoryCol, categoryLabel = "buyer_emirate", translate("emirate", lang)
	case table.HasColumn("invoice_type"):
		categoryCol, categoryLabel = "invoice_type", translate("invoice_type", lang)
	case table.HasColumn("vat_category"):
		categoryCol, categoryLabel = "vat_category", translate("vat_category", lang)
	default:
		return demoChart(Distribution, translate("distribution", lang))
	}

	points := aggregate(table, categoryCol, "") // value counts
	sortDescending(points)

	return &Chart{
		Kind:   Distribution,
		Title:  fmt.Sprintf("%s %s %s", translate("distribution", lang), translate("by", lang), categoryLabel),
		XLabel: categoryLabel,
		YLabel: translate("count", lang),
		Points: points,
	}
}

func geographicChart(table *dataset.Table, lang string) *Chart {
	var emirateCol string
	switch {
	case table.HasColumn("buyer_emirate"):
		emirateCol = "buyer_emirate"
	case table.HasColumn("seller_emirate"):
		emirateCol = "seller_emirate"
	default:
		return demoGeographic(lang)
	}

	valueCol, valueLabel := valueColumn(table, lang)
	points := aggregate(table, emirateCol, valueCol)

	// Rows whose region has no coordinate entry are silently dropped.
	var bubbles []Bubble
	for _, p := range points {
		coords, ok := emirateCoords[p.Label]
		if !ok {
			continue
		}
		bubbles = append(bubbles, Bubble{
			Region: p.Label,
			Lat:    coords.Lat,
			Lon:    coords.Lon,
			Value:  p.Value,
		})
	}

	return &Chart{
		Kind:    Geographic,
		Title:   fmt.Sprintf("%s %s %s", valueLabel, translate("by", lang), translate("emirate", lang)),
		Bubbles: bubbles,
	}
}

func hasNonEmptyValues(table *dataset.Table, column string) bool {
	if !table.HasColumn(column) {
		return false
	}
	for _, row := range table.Rows {
		if row.String(column) != "" {
			return true
		}
	}
	return false
}

func demoValue() float64 {
	return float64(rand.Intn(900) + 100)
}

func demoChart(kind Kind, title string) *Chart {
	points := make([]Point, 0, 5)
	for _, label := range []string{"A", "B", "C", "D", "E"} {
		points = append(points, Point{Label: label, Value: demoValue()})
	}
	return &Chart{Kind: kind, Title: title, Demo: true, Points: points}
}

func demoTimeSeries(lang string) *Chart {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]Point, 0, 12)
	for i := 0; i < 12; i++ {
		points = append(points, Point{
			Label: start.AddDate(0, i, 0).Format("2006-01"),
			Value: demoValue(),
		})
	}
	return &Chart{
		Kind:   TimeSeries,
		Title:  fmt.Sprintf("%s %s", translate("invoice_amount", lang), translate("over_time", lang)),
		XLabel: translate("month", lang),
		YLabel: translate("amount", lang),
		Demo:   true,
		Points: points,
	}
}

func demoGeographic(lang string) *Chart {
	var bubbles []Bubble
	for _, region := range emirateOrder {
		coords := emirateCoords[region]
		bubbles = append(bubbles, Bubble{
			Region: region,
			Lat:    coords.Lat,
			Lon:    coords.Lon,
			Value:  demoValue(),
		})
	}
	return &Chart{
		Kind:    Geographic,
		Title:   translate("geographic_distribution", lang),
		Demo:    true,
		Bubbles: bubbles,
	}
}
