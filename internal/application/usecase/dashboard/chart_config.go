package dashboard

import "sort"

// chartPalette is cycled through in category name order.
var chartPalette = []string{
	"#2563EB",
	"#16A34A",
	"#DC2626",
	"#D97706",
	"#7C3AED",
	"#0891B2",
	"#DB2777",
	"#65A30D",
	"#EA580C",
	"#4F46E5",
}

// ChartSeriesConfig is how a chart presents one series.
type ChartSeriesConfig struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ChartConfig maps a category name to its presentation.
type ChartConfig map[string]ChartSeriesConfig

// BuildChartConfig assigns each distinct category a label and a color. The
// assignment depends only on the set of names, not on their order.
func BuildChartConfig(categories []string) ChartConfig {
	seen := make(map[string]struct{}, len(categories))
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		names = append(names, c)
	}
	sort.Strings(names)

	config := make(ChartConfig, len(names))
	for i, name := range names {
		config[name] = ChartSeriesConfig{
			Label: name,
			Color: chartPalette[i%len(chartPalette)],
		}
	}
	return config
}
