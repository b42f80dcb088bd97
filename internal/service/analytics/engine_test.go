package analytics

import (
	"testing"
	"time"

	"fashiontrends/internal/adapter/storage"
	"fashiontrends/internal/domain/trend"
)

// newFixedEngine returns an engine whose random draws always return n-1
func newFixedEngine() *Engine {
	e := NewEngine(storage.NewTrendStore())
	e.intn = func(n int) int { return n - 1 }
	e.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return e
}

func TestTrendingItemsAllRegions(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	items := e.TrendingItems("all", 0)
	if len(items) != 10*12 {
		t.Fatalf("expected %d items, got %d", 10*12, len(items))
	}

	for i := 1; i < len(items); i++ {
		if items[i].GrowthPercentage > items[i-1].GrowthPercentage {
			t.Fatalf("items not sorted by growth at %d: %d > %d", i, items[i].GrowthPercentage, items[i-1].GrowthPercentage)
		}
	}

	for _, it := range items {
		if it.SustainabilityScore < minSustainability || it.SustainabilityScore > maxSustainability {
			t.Fatalf("sustainability score out of range: %d", it.SustainabilityScore)
		}
		switch it.PriceRange {
		case "Budget", "Mid-range", "Luxury":
		default:
			t.Fatalf("unexpected price range %q", it.PriceRange)
		}
	}
}

func TestTrendingItemsRegionLimit(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	items := e.TrendingItems("Asia", 3)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	want := []struct {
		item   string
		growth int
	}{
		{"Cropped Jackets", 55},
		{"Oversized Shirts", 52},
		{"Colorful Hair Accessories", 49},
	}
	for i, w := range want {
		if items[i].Item != w.item || items[i].GrowthPercentage != w.growth || items[i].Region != "Asia" {
			t.Fatalf("item %d: expected %s (%d) from Asia, got %+v", i, w.item, w.growth, items[i])
		}
	}
}

func TestTrendingItemsLimitLargerThanTotal(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	if got := len(e.TrendingItems("Europe", 500)); got != 12 {
		t.Fatalf("expected 12 items, got %d", got)
	}
}

func TestTrendingItemsUnderscoreFilter(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	items := e.TrendingItems("middle_east", 0)
	if len(items) != 12 {
		t.Fatalf("expected 12 items, got %d", len(items))
	}
	if items[0].Region != "Middle East" {
		t.Fatalf("expected Middle East, got %q", items[0].Region)
	}
}

func TestTrendingItemsUnknownRegion(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	if got := e.TrendingItems("Atlantis", 0); len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}

func TestTrendingColors(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	colors := e.TrendingColors("all")
	if len(colors) != 10*8 {
		t.Fatalf("expected %d colors, got %d", 10*8, len(colors))
	}

	for i, c := range colors {
		if c.PopularityScore < minPopularity || c.PopularityScore > maxPopularity {
			t.Fatalf("popularity out of range: %d", c.PopularityScore)
		}
		if i > 0 && c.PopularityScore > colors[i-1].PopularityScore {
			t.Fatalf("colors not sorted at %d", i)
		}
	}

	asia := e.TrendingColors("asia")
	if len(asia) != 8 {
		t.Fatalf("expected 8 Asia colors, got %d", len(asia))
	}
	for _, c := range asia {
		if c.Region != "Asia" {
			t.Fatalf("unexpected region %q", c.Region)
		}
	}
}

func TestTrendingColorsFixedRandomness(t *testing.T) {
	e := newFixedEngine()

	colors := e.TrendingColors("Europe")
	if colors[0].PopularityScore != maxPopularity || colors[0].SeasonRelevance != "Winter" {
		t.Fatalf("unexpected fixed draw: %+v", colors[0])
	}
	// equal scores keep store order
	if colors[0].Color != "Burgundy" || colors[7].Color != "Rich Brown" {
		t.Fatalf("expected store order for ties, got %s..%s", colors[0].Color, colors[7].Color)
	}
}

func TestSummary(t *testing.T) {
	e := newFixedEngine()
	s := e.Summary()

	if s.TotalTrendsTracked != 120 || s.TotalColorsTracked != 80 || s.TotalRegions != 10 {
		t.Fatalf("unexpected totals: %d/%d/%d", s.TotalTrendsTracked, s.TotalColorsTracked, s.TotalRegions)
	}
	if s.GlobalAverageGrowth != 40.65 {
		t.Fatalf("expected global average 40.65, got %v", s.GlobalAverageGrowth)
	}
	if s.GrowthRange.Min != 28 || s.GrowthRange.Max != 55 {
		t.Fatalf("unexpected growth range: %+v", s.GrowthRange)
	}

	if len(s.TopPerformingRegions) != 5 {
		t.Fatalf("expected 5 top regions, got %d", len(s.TopPerformingRegions))
	}
	wantRegions := []string{"Asia", "Africa", "Middle East", "Eastern Europe", "Southeast Asia"}
	for i, w := range wantRegions {
		got := s.TopPerformingRegions[i]
		if got.Region != w {
			t.Fatalf("top region %d: expected %s, got %s", i, w, got.Region)
		}
		if i > 0 && got.AverageGrowth > s.TopPerformingRegions[i-1].AverageGrowth {
			t.Fatalf("top regions not sorted at %d", i)
		}
	}
	if s.TopPerformingRegions[0].AverageGrowth != 44.5 {
		t.Fatalf("expected Asia average 44.5, got %v", s.TopPerformingRegions[0].AverageGrowth)
	}
	if s.TopPerformingRegions[2].AverageGrowth != 42.33 {
		t.Fatalf("expected Middle East average 42.33, got %v", s.TopPerformingRegions[2].AverageGrowth)
	}
	if s.TopPerformingRegions[0].DiversityScore != 100 {
		t.Fatalf("expected diversity 100, got %v", s.TopPerformingRegions[0].DiversityScore)
	}

	if len(s.TopCategories) != 10 {
		t.Fatalf("expected 10 top categories, got %d", len(s.TopCategories))
	}
	wantCategories := []trend.CategoryFrequency{
		{Category: "Artisanal", Frequency: 5},
		{Category: "Cultural Heritage", Frequency: 4},
		{Category: "Modern Traditional", Frequency: 3},
		{Category: "Minimalist", Frequency: 2},
		{Category: "Sustainable Fashion", Frequency: 2},
	}
	for i, w := range wantCategories {
		if s.TopCategories[i] != w {
			t.Fatalf("category %d: expected %+v, got %+v", i, w, s.TopCategories[i])
		}
	}

	if len(s.DataCoverage) != 10 || s.DataCoverage[0] != "North America" {
		t.Fatalf("unexpected coverage: %v", s.DataCoverage)
	}
}

func TestCompareRegionsDefault(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	got := e.CompareRegions(nil)
	want := []string{"North America", "Europe", "Asia"}
	if len(got) != len(want) {
		t.Fatalf("expected %d regions, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i].Region != w {
			t.Fatalf("region %d: expected %s, got %s", i, w, got[i].Region)
		}
		if len(got[i].TopItems) != 5 || len(got[i].TopColors) != 5 {
			t.Fatalf("%s: expected 5 items and colors, got %d/%d", w, len(got[i].TopItems), len(got[i].TopColors))
		}
	}

	if got[0].AvgGrowth != 39.33 {
		t.Fatalf("expected North America avg 39.33, got %v", got[0].AvgGrowth)
	}
	cats := got[2].DominantCategories
	if len(cats) != 5 || cats[0] != "K-Fashion" || cats[4] != "Harajuku" {
		t.Fatalf("unexpected Asia categories: %v", cats)
	}
}

func TestCompareRegionsSkipsUnknown(t *testing.T) {
	e := NewEngine(storage.NewTrendStore())

	got := e.CompareRegions([]string{"Africa", "Atlantis", "Middle_East", "Africa"})
	if len(got) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(got))
	}
	if got[0].Region != "Africa" || got[1].Region != "Middle East" {
		t.Fatalf("unexpected regions: %s, %s", got[0].Region, got[1].Region)
	}
}
