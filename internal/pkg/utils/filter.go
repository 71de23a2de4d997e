package utils

import (
	"clinic-portal-service/internal/pkg/constvars"
	"fmt"
	"strings"
)

// FilterRecords keeps the records whose filter fields contain q (case
// insensitive) and, when active is set, whose isActive flag matches.
func FilterRecords(records []map[string]interface{}, fields []string, q string, active *bool) []map[string]interface{} {
	needle := strings.ToLower(strings.TrimSpace(q))
	filtered := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		if active != nil && RecordIsActive(record) != *active {
			continue
		}
		if needle != "" && !recordContains(record, fields, needle) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// RecordIsActive treats a missing isActive flag as active.
func RecordIsActive(record map[string]interface{}) bool {
	value, ok := record[constvars.FieldIsActive]
	if !ok || value == nil {
		return true
	}
	if flag, ok := value.(bool); ok {
		return flag
	}
	return true
}

func recordContains(record map[string]interface{}, fields []string, needle string) bool {
	for _, field := range fields {
		value, ok := record[field]
		if !ok || value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(value)), needle) {
			return true
		}
	}
	return false
}
