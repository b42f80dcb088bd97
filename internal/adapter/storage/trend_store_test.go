package storage

import (
	"errors"
	"testing"

	"fashiontrends/internal/domain/trend"
)

func TestNewTrendStoreShape(t *testing.T) {
	s := NewTrendStore()

	names := s.RegionNames()
	want := []string{
		"North America", "Europe", "Asia", "South America", "Middle East",
		"Africa", "Australia & Oceania", "Eastern Europe", "Southeast Asia", "Caribbean",
	}
	if len(names) != len(want) {
		t.Fatalf("expected %d regions, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("region %d: expected %q, got %q", i, want[i], names[i])
		}
	}

	for _, r := range s.Regions() {
		if len(r.Entries) != 12 {
			t.Errorf("%s: expected 12 entries, got %d", r.Name, len(r.Entries))
		}
		if len(r.Colors) != 8 {
			t.Errorf("%s: expected 8 colors, got %d", r.Name, len(r.Colors))
		}
	}

	if s.SnapshotID() == "" {
		t.Fatal("expected snapshot ID to be set")
	}
}

func TestRegionLookup(t *testing.T) {
	s := NewTrendStore()

	r, err := s.Region("Asia")
	if err != nil {
		t.Fatalf("Region(Asia) failed: %v", err)
	}
	first := r.Entries[0]
	if first.Item != "Cropped Jackets" || first.Category != "K-Fashion" || first.Growth != 55 {
		t.Fatalf("unexpected first Asia entry: %+v", first)
	}

	_, err = s.Region("Atlantis")
	if !errors.Is(err, trend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegionIsCopied(t *testing.T) {
	s := NewTrendStore()

	r, _ := s.Region("Europe")
	r.Entries[0].Item = "Mutated"
	r.Colors[0] = "Mutated"

	again, _ := s.Region("Europe")
	if again.Entries[0].Item != "Trench Coats" || again.Colors[0] != "Burgundy" {
		t.Fatalf("store was mutated through a returned region: %+v", again.Entries[0])
	}
}

func TestSeasonLookup(t *testing.T) {
	s := NewTrendStore()

	if got := s.SeasonNames(); len(got) != 4 || got[0] != "Spring" || got[3] != "Winter" {
		t.Fatalf("unexpected season names: %v", got)
	}

	summer, err := s.Season("Summer")
	if err != nil {
		t.Fatalf("Season(Summer) failed: %v", err)
	}
	if len(summer.Items) != 5 || summer.Items[0] != "Sundresses" {
		t.Fatalf("unexpected summer items: %v", summer.Items)
	}

	if _, err := s.Season("Monsoon"); !errors.Is(err, trend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildRegionDefaultsCategory(t *testing.T) {
	r := buildRegion(regionSeed{
		name:       "Short",
		items:      []string{"A", "B", "C"},
		categories: []string{"X"},
		growth:     []int{1, 2, 3},
	})

	if r.Entries[0].Category != "X" {
		t.Fatalf("expected first category X, got %q", r.Entries[0].Category)
	}
	for _, e := range r.Entries[1:] {
		if e.Category != trend.DefaultCategory {
			t.Fatalf("expected %q past categories, got %q", trend.DefaultCategory, e.Category)
		}
	}
	if r.Entries[2].Growth != 3 {
		t.Fatalf("expected growth 3, got %d", r.Entries[2].Growth)
	}
}

func TestInfluence(t *testing.T) {
	d := NewTrendStore().Influence()
	if len(d.CelebrityEndorsements) != 5 || len(d.SocialMediaTrends) != 4 {
		t.Fatalf("unexpected influence sizes: %d/%d", len(d.CelebrityEndorsements), len(d.SocialMediaTrends))
	}
	if d.SocialMediaTrends[0].Platform != "TikTok" || d.SocialMediaTrends[0].InfluenceScore != 85 {
		t.Fatalf("unexpected first social trend: %+v", d.SocialMediaTrends[0])
	}
}
