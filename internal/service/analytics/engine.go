package analytics

import (
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"fashiontrends/internal/domain/trend"
)

const (
	topRegionsLimit    = 5
	topCategoriesLimit = 10
	comparisonDefault  = 3
	comparisonWindow   = 5

	minPopularity     = 70
	maxPopularity     = 95
	minSustainability = 60
	maxSustainability = 95
)

// Engine implements trend.Aggregator over a read-only catalog
type Engine struct {
	catalog trend.Catalog
	intn    func(n int) int
	now     func() time.Time
}

// NewEngine creates a new aggregation engine
func NewEngine(catalog trend.Catalog) *Engine {
	return &Engine{
		catalog: catalog,
		intn:    rand.IntN,
		now:     time.Now,
	}
}

// TrendingColors flattens the colors of the selected regions and ranks them by
// a per-call popularity score
func (e *Engine) TrendingColors(region string) []trend.RankedColor {
	regions := e.selectRegions(region)

	colors := make([]trend.RankedColor, 0, len(regions)*8)
	for _, r := range regions {
		for _, c := range r.Colors {
			colors = append(colors, trend.RankedColor{
				Color:           c,
				Region:          r.Name,
				PopularityScore: e.between(minPopularity, maxPopularity),
				SeasonRelevance: e.pick(trend.Seasons),
			})
		}
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].PopularityScore > colors[j].PopularityScore
	})

	return colors
}

// TrendingItems flattens the items of the selected regions, ranked by growth.
// A positive limit truncates the result.
func (e *Engine) TrendingItems(region string, limit int) []trend.RankedItem {
	regions := e.selectRegions(region)

	items := make([]trend.RankedItem, 0, len(regions)*12)
	for _, r := range regions {
		for _, entry := range r.Entries {
			items = append(items, trend.RankedItem{
				Item:                entry.Item,
				Region:              r.Name,
				GrowthPercentage:    entry.Growth,
				Category:            entry.Category,
				PriceRange:          e.pick(trend.PriceRanges),
				SustainabilityScore: e.between(minSustainability, maxSustainability),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].GrowthPercentage > items[j].GrowthPercentage
	})

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

// Summary computes cross-region statistics over the whole catalog
func (e *Engine) Summary() trend.Summary {
	regions := e.catalog.Regions()

	summary := trend.Summary{
		TotalRegions:  len(regions),
		LastUpdated:   e.now(),
		DataCoverage:  make([]string, 0, len(regions)),
		TopCategories: []trend.CategoryFrequency{},
	}

	var growthSum int
	first := true
	performance := make([]trend.RegionPerformance, 0, len(regions))
	categoryCounts := make(map[string]int)
	var categoryOrder []string

	for _, r := range regions {
		summary.DataCoverage = append(summary.DataCoverage, r.Name)
		summary.TotalTrendsTracked += len(r.Entries)
		summary.TotalColorsTracked += len(r.Colors)

		unique := make(map[string]struct{}, len(r.Entries))
		regionSum := 0
		for _, entry := range r.Entries {
			regionSum += entry.Growth
			unique[entry.Category] = struct{}{}

			if _, seen := categoryCounts[entry.Category]; !seen {
				categoryOrder = append(categoryOrder, entry.Category)
			}
			categoryCounts[entry.Category]++

			if first {
				summary.GrowthRange = trend.GrowthRange{Min: entry.Growth, Max: entry.Growth}
				first = false
			}
			if entry.Growth < summary.GrowthRange.Min {
				summary.GrowthRange.Min = entry.Growth
			}
			if entry.Growth > summary.GrowthRange.Max {
				summary.GrowthRange.Max = entry.Growth
			}
		}
		growthSum += regionSum

		perf := trend.RegionPerformance{
			Region:      r.Name,
			TotalTrends: len(r.Entries),
			TotalColors: len(r.Colors),
		}
		if n := len(r.Entries); n > 0 {
			perf.AverageGrowth = round2(float64(regionSum) / float64(n))
			perf.DiversityScore = round2(float64(len(unique)) / float64(n) * 100)
		}
		performance = append(performance, perf)
	}

	if summary.TotalTrendsTracked > 0 {
		summary.GlobalAverageGrowth = round2(float64(growthSum) / float64(summary.TotalTrendsTracked))
	}

	sort.SliceStable(performance, func(i, j int) bool {
		return performance[i].AverageGrowth > performance[j].AverageGrowth
	})
	if len(performance) > topRegionsLimit {
		performance = performance[:topRegionsLimit]
	}
	summary.TopPerformingRegions = performance

	for _, c := range categoryOrder {
		summary.TopCategories = append(summary.TopCategories, trend.CategoryFrequency{
			Category:  c,
			Frequency: categoryCounts[c],
		})
	}
	sort.SliceStable(summary.TopCategories, func(i, j int) bool {
		return summary.TopCategories[i].Frequency > summary.TopCategories[j].Frequency
	})
	if len(summary.TopCategories) > topCategoriesLimit {
		summary.TopCategories = summary.TopCategories[:topCategoriesLimit]
	}

	return summary
}

// CompareRegions builds side-by-side views of the named regions. Unknown names
// are skipped; with no names the first three regions are compared.
func (e *Engine) CompareRegions(names []string) []trend.Comparison {
	if len(names) == 0 {
		names = e.catalog.RegionNames()
		if len(names) > comparisonDefault {
			names = names[:comparisonDefault]
		}
	}

	seen := make(map[string]struct{}, len(names))
	comparisons := make([]trend.Comparison, 0, len(names))
	for _, raw := range names {
		name := trend.NormalizeRegion(raw)
		if _, dup := seen[name]; dup {
			continue
		}
		r, err := e.catalog.Region(name)
		if err != nil {
			continue
		}
		seen[name] = struct{}{}
		comparisons = append(comparisons, compare(r))
	}

	return comparisons
}

func compare(r trend.Region) trend.Comparison {
	window := r.Entries
	if len(window) > comparisonWindow {
		window = window[:comparisonWindow]
	}

	c := trend.Comparison{
		Region:             r.Name,
		TopItems:           make([]string, 0, len(window)),
		TopColors:          append([]string(nil), r.Colors[:min(comparisonWindow, len(r.Colors))]...),
		DominantCategories: []string{},
	}

	seen := make(map[string]struct{}, len(window))
	for _, entry := range window {
		c.TopItems = append(c.TopItems, entry.Item)
		if _, ok := seen[entry.Category]; !ok {
			seen[entry.Category] = struct{}{}
			c.DominantCategories = append(c.DominantCategories, entry.Category)
		}
	}

	if len(r.Entries) > 0 {
		sum := 0
		for _, entry := range r.Entries {
			sum += entry.Growth
		}
		c.AvgGrowth = round2(float64(sum) / float64(len(r.Entries)))
	}

	return c
}

// selectRegions resolves a region filter; unknown regions select nothing
func (e *Engine) selectRegions(filter string) []trend.Region {
	if trend.IsAll(filter) {
		return e.catalog.Regions()
	}
	r, err := e.catalog.Region(trend.NormalizeRegion(filter))
	if err != nil {
		return nil
	}
	return []trend.Region{r}
}

// between returns a random integer in [lo, hi]
func (e *Engine) between(lo, hi int) int {
	return lo + e.intn(hi-lo+1)
}

func (e *Engine) pick(options []string) string {
	return options[e.intn(len(options))]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
