package trend

import "testing"

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Middle_East", "Middle East"},
		{"middle_east", "Middle East"},
		{"Australia_Oceania", "Australia & Oceania"},
		{"australia & oceania", "Australia & Oceania"},
		{"north_america", "North America"},
		{"NORTH AMERICA", "North America"},
		{"asia", "Asia"},
		{" Caribbean ", "Caribbean"},
		{"Southeast_Asia", "Southeast Asia"},
		{"Atlantis", "Atlantis"},
	}

	for _, tt := range tests {
		if got := NormalizeRegion(tt.raw); got != tt.want {
			t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeSeason(t *testing.T) {
	for raw, want := range map[string]string{"spring": "Spring", "WINTER": "Winter", "Fall": "Fall"} {
		if got := NormalizeSeason(raw); got != want {
			t.Errorf("NormalizeSeason(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestIsAll(t *testing.T) {
	for _, v := range []string{"", "all", "ALL", "All"} {
		if !IsAll(v) {
			t.Errorf("IsAll(%q) = false, want true", v)
		}
	}
	if IsAll("Asia") {
		t.Error("IsAll(\"Asia\") = true, want false")
	}
}

func TestRegionView(t *testing.T) {
	r := Region{
		Name: "Test",
		Entries: []Entry{
			{Item: "A", Category: "X", Growth: 10},
			{Item: "B", Category: DefaultCategory, Growth: 20},
		},
		Colors: []string{"Red"},
	}

	view := r.View()
	if len(view.TrendingItems) != 2 || view.TrendingItems[1] != "B" {
		t.Fatalf("unexpected items: %v", view.TrendingItems)
	}
	if view.TrendingCategories[1] != DefaultCategory {
		t.Fatalf("expected default category, got %q", view.TrendingCategories[1])
	}
	if view.GrowthPercentage[0] != 10 || view.GrowthPercentage[1] != 20 {
		t.Fatalf("unexpected growth: %v", view.GrowthPercentage)
	}

	view.TrendingColors[0] = "Blue"
	if r.Colors[0] != "Red" {
		t.Fatal("view shares color storage with the region")
	}
}
