package booking

import (
	"strings"

	"mensa/models"
)

// NormalizeServices maps submitted line items onto stored ones. The
// legacy "name" field is honored when "serviceName" is absent; price
// defaults to zero.
func NormalizeServices(items []models.ServiceItemInput) []models.ServiceItem {
	if len(items) == 0 {
		return nil
	}
	normalized := make([]models.ServiceItem, 0, len(items))
	for _, item := range items {
		name := item.ServiceName
		if name == "" {
			name = item.Name
		}
		normalized = append(normalized, models.ServiceItem{
			ServiceName: name,
			Price:       item.Price,
		})
	}
	return normalized
}

// JoinServiceNames builds the flattened service description: names with
// no value are dropped, the rest joined with ", ".
func JoinServiceNames(items []models.ServiceItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.ServiceName != "" {
			names = append(names, item.ServiceName)
		}
	}
	return strings.Join(names, ", ")
}
