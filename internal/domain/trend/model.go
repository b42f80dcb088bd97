package trend

import (
	"time"
)

// DefaultCategory labels a trend entry whose region lists fewer categories than items
const DefaultCategory = "General"

// Seasons lists the calendar groupings in store order
var Seasons = []string{"Spring", "Summer", "Fall", "Winter"}

// PriceRanges lists the price tiers an item listing can be assigned
var PriceRanges = []string{"Budget", "Mid-range", "Luxury"}

// Entry is one trending item of a region together with its category and growth
type Entry struct {
	Item     string
	Category string
	Growth   int
}

// Region represents a geographic or cultural trend grouping
type Region struct {
	Name    string
	Entries []Entry
	Colors  []string
}

// RegionView is the wire shape of a region, keeping the parallel-array layout
type RegionView struct {
	TrendingItems      []string `json:"trending_items"`
	TrendingColors     []string `json:"trending_colors"`
	TrendingCategories []string `json:"trending_categories"`
	GrowthPercentage   []int    `json:"growth_percentage"`
}

// View flattens the region entries into the parallel-array wire shape
func (r Region) View() RegionView {
	view := RegionView{
		TrendingItems:      make([]string, 0, len(r.Entries)),
		TrendingColors:     append([]string(nil), r.Colors...),
		TrendingCategories: make([]string, 0, len(r.Entries)),
		GrowthPercentage:   make([]int, 0, len(r.Entries)),
	}
	for _, e := range r.Entries {
		view.TrendingItems = append(view.TrendingItems, e.Item)
		view.TrendingCategories = append(view.TrendingCategories, e.Category)
		view.GrowthPercentage = append(view.GrowthPercentage, e.Growth)
	}
	return view
}

// Season represents seasonal trend data
type Season struct {
	Name       string   `json:"-"`
	Colors     []string `json:"colors"`
	Items      []string `json:"items"`
	Categories []string `json:"categories"`
}

// InfluencerRecord describes a celebrity endorsement and its effect on an item
type InfluencerRecord struct {
	Name        string `json:"name"`
	ImpactItem  string `json:"impact_item"`
	GrowthBoost int    `json:"growth_boost"`
}

// SocialTrendRecord describes a trending hashtag on a social platform
type SocialTrendRecord struct {
	Platform        string `json:"platform"`
	TrendingHashtag string `json:"trending_hashtag"`
	InfluenceScore  int    `json:"influence_score"`
}

// InfluenceData groups influencer and social media impact data
type InfluenceData struct {
	CelebrityEndorsements []InfluencerRecord  `json:"celebrity_endorsements"`
	SocialMediaTrends     []SocialTrendRecord `json:"social_media_trends"`
}

// RankedColor is a color listing annotated with a popularity score
type RankedColor struct {
	Color           string `json:"color"`
	Region          string `json:"region"`
	PopularityScore int    `json:"popularity_score"`
	SeasonRelevance string `json:"season_relevance"`
}

// RankedItem is an item listing annotated with growth and scoring data
type RankedItem struct {
	Item                string `json:"item"`
	Region              string `json:"region"`
	GrowthPercentage    int    `json:"growth_percentage"`
	Category            string `json:"category"`
	PriceRange          string `json:"price_range"`
	SustainabilityScore int    `json:"sustainability_score"`
}

// RegionPerformance summarizes growth and diversity for a single region
type RegionPerformance struct {
	Region         string  `json:"region"`
	AverageGrowth  float64 `json:"average_growth"`
	TotalTrends    int     `json:"total_trends"`
	TotalColors    int     `json:"total_colors"`
	DiversityScore float64 `json:"diversity_score"`
}

// CategoryFrequency counts how often a category appears across regions
type CategoryFrequency struct {
	Category  string `json:"category"`
	Frequency int    `json:"frequency"`
}

// GrowthRange holds the global minimum and maximum growth values
type GrowthRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Summary holds the cross-region analytics view
type Summary struct {
	TotalTrendsTracked   int                 `json:"total_trends_tracked"`
	TotalColorsTracked   int                 `json:"total_colors_tracked"`
	TotalRegions         int                 `json:"total_regions"`
	GlobalAverageGrowth  float64             `json:"global_average_growth"`
	TopPerformingRegions []RegionPerformance `json:"top_performing_regions"`
	TopCategories        []CategoryFrequency `json:"top_categories"`
	LastUpdated          time.Time           `json:"last_updated"`
	DataCoverage         []string            `json:"data_coverage"`
	GrowthRange          GrowthRange         `json:"growth_range"`
}

// Comparison is the per-region view used by regional comparison
type Comparison struct {
	Region             string   `json:"-"`
	TopItems           []string `json:"top_items"`
	TopColors          []string `json:"top_colors"`
	AvgGrowth          float64  `json:"avg_growth"`
	DominantCategories []string `json:"dominant_categories"`
}
