// internal/domain/trend/catalog.go

package trend

import (
	"errors"
	"time"
)

// ErrNotFound is returned for unknown regions, seasons and routes
var ErrNotFound = errors.New("not found")

// Catalog defines read access to the static trend dataset
type Catalog interface {
	// SnapshotID identifies the dataset loaded by this process
	SnapshotID() string

	// LoadedAt returns the time the dataset was loaded
	LoadedAt() time.Time

	// RegionNames returns region names in store order
	RegionNames() []string

	// Regions returns all regions in store order
	Regions() []Region

	// Region returns a region by canonical name
	Region(name string) (Region, error)

	// SeasonNames returns season names in store order
	SeasonNames() []string

	// Seasons returns all seasons in store order
	Seasons() []Season

	// Season returns a season by canonical name
	Season(name string) (Season, error)

	// Influence returns influencer and social media impact data
	Influence() InfluenceData
}

// Aggregator defines the derived views computed over a Catalog
type Aggregator interface {
	// TrendingColors flattens region colors into a ranked list
	TrendingColors(region string) []RankedColor

	// TrendingItems flattens region items into a list ranked by growth
	TrendingItems(region string, limit int) []RankedItem

	// Summary computes cross-region analytics
	Summary() Summary

	// CompareRegions builds a side-by-side view of the given regions
	CompareRegions(regions []string) []Comparison
}
