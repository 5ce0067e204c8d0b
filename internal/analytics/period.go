package analytics

import "qrmenu-analytics/internal/models"

// PercentChange is the relative change from previous to current in percent. A zero
// previous value yields 100 when current grew and 0 otherwise.
func PercentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func Compare(current, previous float64) models.MetricComparison {
	return models.MetricComparison{
		Current:       current,
		Previous:      previous,
		PercentChange: PercentChange(current, previous),
	}
}

// CompareMetric evaluates metric over both event sets with the same zero-handling rule.
func CompareMetric(current, previous []*models.Event, metric func([]*models.Event) int64) models.MetricComparison {
	return Compare(float64(metric(current)), float64(metric(previous)))
}
