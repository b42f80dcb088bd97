// internal/adapter/storage/trend_store.go

package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fashiontrends/internal/domain/trend"
)

// TrendStore implements an immutable in-memory trend catalog
type TrendStore struct {
	snapshotID  string
	loadedAt    time.Time
	regions     []trend.Region
	regionIndex map[string]int
	seasons     []trend.Season
	seasonIndex map[string]int
	influence   trend.InfluenceData
}

// NewTrendStore creates a trend store loaded with the reference dataset
func NewTrendStore() *TrendStore {
	s := &TrendStore{
		snapshotID:  uuid.New().String(),
		loadedAt:    time.Now(),
		regions:     make([]trend.Region, 0, len(regionSeeds)),
		regionIndex: make(map[string]int, len(regionSeeds)),
		seasons:     make([]trend.Season, 0, len(seasonSeeds)),
		seasonIndex: make(map[string]int, len(seasonSeeds)),
		influence:   copyInfluence(influenceSeed),
	}

	for _, seed := range regionSeeds {
		s.regionIndex[seed.name] = len(s.regions)
		s.regions = append(s.regions, buildRegion(seed))
	}

	for _, seed := range seasonSeeds {
		s.seasonIndex[seed.name] = len(s.seasons)
		s.seasons = append(s.seasons, trend.Season{
			Name:       seed.name,
			Colors:     cloneStrings(seed.colors),
			Items:      cloneStrings(seed.items),
			Categories: cloneStrings(seed.categories),
		})
	}

	return s
}

// buildRegion zips the parallel seed arrays into trend entries
func buildRegion(seed regionSeed) trend.Region {
	entries := make([]trend.Entry, 0, len(seed.items))
	for i, item := range seed.items {
		category := trend.DefaultCategory
		if i < len(seed.categories) {
			category = seed.categories[i]
		}
		var growth int
		if i < len(seed.growth) {
			growth = seed.growth[i]
		}
		entries = append(entries, trend.Entry{Item: item, Category: category, Growth: growth})
	}

	return trend.Region{
		Name:    seed.name,
		Entries: entries,
		Colors:  cloneStrings(seed.colors),
	}
}

// SnapshotID identifies the dataset loaded by this process
func (s *TrendStore) SnapshotID() string {
	return s.snapshotID
}

// LoadedAt returns the time the dataset was loaded
func (s *TrendStore) LoadedAt() time.Time {
	return s.loadedAt
}

// RegionNames returns region names in store order
func (s *TrendStore) RegionNames() []string {
	names := make([]string, 0, len(s.regions))
	for _, r := range s.regions {
		names = append(names, r.Name)
	}
	return names
}

// Regions returns copies of all regions in store order
func (s *TrendStore) Regions() []trend.Region {
	regions := make([]trend.Region, 0, len(s.regions))
	for _, r := range s.regions {
		regions = append(regions, copyRegion(r))
	}
	return regions
}

// Region returns a copy of the region with the given canonical name
func (s *TrendStore) Region(name string) (trend.Region, error) {
	i, ok := s.regionIndex[name]
	if !ok {
		return trend.Region{}, fmt.Errorf("region %q: %w", name, trend.ErrNotFound)
	}
	return copyRegion(s.regions[i]), nil
}

// SeasonNames returns season names in store order
func (s *TrendStore) SeasonNames() []string {
	names := make([]string, 0, len(s.seasons))
	for _, season := range s.seasons {
		names = append(names, season.Name)
	}
	return names
}

// Seasons returns copies of all seasons in store order
func (s *TrendStore) Seasons() []trend.Season {
	seasons := make([]trend.Season, 0, len(s.seasons))
	for _, season := range s.seasons {
		seasons = append(seasons, copySeason(season))
	}
	return seasons
}

// Season returns a copy of the season with the given canonical name
func (s *TrendStore) Season(name string) (trend.Season, error) {
	i, ok := s.seasonIndex[name]
	if !ok {
		return trend.Season{}, fmt.Errorf("season %q: %w", name, trend.ErrNotFound)
	}
	return copySeason(s.seasons[i]), nil
}

// Influence returns a copy of the influencer impact data
func (s *TrendStore) Influence() trend.InfluenceData {
	return copyInfluence(s.influence)
}

func copyRegion(r trend.Region) trend.Region {
	return trend.Region{
		Name:    r.Name,
		Entries: append([]trend.Entry(nil), r.Entries...),
		Colors:  cloneStrings(r.Colors),
	}
}

func copySeason(s trend.Season) trend.Season {
	return trend.Season{
		Name:       s.Name,
		Colors:     cloneStrings(s.Colors),
		Items:      cloneStrings(s.Items),
		Categories: cloneStrings(s.Categories),
	}
}

func copyInfluence(d trend.InfluenceData) trend.InfluenceData {
	return trend.InfluenceData{
		CelebrityEndorsements: append([]trend.InfluencerRecord(nil), d.CelebrityEndorsements...),
		SocialMediaTrends:     append([]trend.SocialTrendRecord(nil), d.SocialMediaTrends...),
	}
}

func cloneStrings(in []string) []string {
	return append([]string(nil), in...)
}
