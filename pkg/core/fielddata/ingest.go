// Package fielddata closes the ground-truth loop: ingest field CSVs, compare
// them against model projections, auto-tune parameters from the observed
// drift, and flag when that drift changes which charger variant looks best.
// Grounded on engine/field_data.py.
package fielddata

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"zngsim/pkg/models"
)

// IngestBMSCSV parses a battery-management-system telemetry CSV into
// BMSRecords. Expected header columns: pack_id, month, soh,
// cumulative_cycles[, temperature_avg_c]. Rows that fail to parse are
// silently skipped, matching the reference implementation's tolerance for
// malformed field exports.
func IngestBMSCSV(r io.Reader) ([]models.BMSRecord, error) {
	rows, err := readCSVRows(r)
	if err != nil {
		return nil, err
	}

	records := make([]models.BMSRecord, 0, len(rows))
	for _, row := range rows {
		month, err := strconv.Atoi(strings.TrimSpace(row["month"]))
		if err != nil {
			continue
		}
		soh, err := strconv.ParseFloat(strings.TrimSpace(row["soh"]), 64)
		if err != nil {
			continue
		}
		cycles, err := strconv.Atoi(strings.TrimSpace(row["cumulative_cycles"]))
		if err != nil {
			continue
		}
		rec := models.BMSRecord{
			PackID:           strings.TrimSpace(row["pack_id"]),
			Month:            month,
			SOH:              soh,
			CumulativeCycles: cycles,
			TemperatureAvgC:  parseOptionalFloat(row["temperature_avg_c"]),
		}
		records = append(records, rec)
	}
	return records, nil
}

// IngestChargerCSV parses a charger failure log CSV into
// ChargerFailureRecords. Expected header columns: dock_id, failure_month,
// downtime_hours[, charger_variant_name, repair_cost, was_replaced].
func IngestChargerCSV(r io.Reader) ([]models.ChargerFailureRecord, error) {
	rows, err := readCSVRows(r)
	if err != nil {
		return nil, err
	}

	records := make([]models.ChargerFailureRecord, 0, len(rows))
	for _, row := range rows {
		month, err := strconv.Atoi(strings.TrimSpace(row["failure_month"]))
		if err != nil {
			continue
		}
		downtime, err := strconv.ParseFloat(strings.TrimSpace(row["downtime_hours"]), 64)
		if err != nil {
			continue
		}
		rec := models.ChargerFailureRecord{
			DockID:             strings.TrimSpace(row["dock_id"]),
			ChargerVariantName: parseOptionalString(row["charger_variant_name"]),
			FailureMonth:       month,
			DowntimeHours:      downtime,
			RepairCost:         parseOptionalFloat(row["repair_cost"]),
			WasReplaced:        isTruthy(row["was_replaced"]),
		}
		records = append(records, rec)
	}
	return records, nil
}

func readCSVRows(r io.Reader) ([]map[string]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseOptionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "NA" || raw == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "NA" || raw == "null" {
		return nil
	}
	return &raw
}

func isTruthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
