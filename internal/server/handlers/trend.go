// internal/server/handlers/trend.go

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"fashiontrends/internal/domain/trend"
)

// APIVersion is reported by the index endpoint
const APIVersion = "2.0"

type indexResponse struct {
	Message        string   `json:"message"`
	Version        string   `json:"version"`
	SnapshotID     string   `json:"snapshot_id"`
	RegionsCovered []string `json:"regions_covered"`
	TotalRegions   int      `json:"total_regions"`
	Endpoints      []string `json:"endpoints"`
}

type healthResponse struct {
	Status     string    `json:"status"`
	SnapshotID string    `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	Uptime     string    `json:"uptime"`
}

type allRegionsResponse struct {
	Status       string        `json:"status"`
	Data         orderedObject `json:"data"`
	RegionsCount int           `json:"regions_count"`
	Timestamp    time.Time     `json:"timestamp"`
}

type regionResponse struct {
	Status    string           `json:"status"`
	Region    string           `json:"region"`
	Data      trend.RegionView `json:"data"`
	Timestamp time.Time        `json:"timestamp"`
}

type colorsResponse struct {
	Status      string              `json:"status"`
	Data        []trend.RankedColor `json:"data"`
	TotalColors int                 `json:"total_colors"`
	Timestamp   time.Time           `json:"timestamp"`
}

type itemsResponse struct {
	Status     string             `json:"status"`
	Data       []trend.RankedItem `json:"data"`
	TotalItems int                `json:"total_items"`
	Timestamp  time.Time          `json:"timestamp"`
}

type analyticsResponse struct {
	Status string        `json:"status"`
	Data   trend.Summary `json:"data"`
}

type allSeasonsResponse struct {
	Status    string        `json:"status"`
	Data      orderedObject `json:"data"`
	Timestamp time.Time     `json:"timestamp"`
}

type seasonResponse struct {
	Status    string       `json:"status"`
	Season    string       `json:"season"`
	Data      trend.Season `json:"data"`
	Timestamp time.Time    `json:"timestamp"`
}

type influenceResponse struct {
	Status    string              `json:"status"`
	Data      trend.InfluenceData `json:"data"`
	Timestamp time.Time           `json:"timestamp"`
}

type comparisonResponse struct {
	Status          string        `json:"status"`
	Data            orderedObject `json:"data"`
	RegionsCompared int           `json:"regions_compared"`
	Timestamp       time.Time     `json:"timestamp"`
}

// TrendHandler handles trend-related HTTP requests
type TrendHandler struct {
	catalog trend.Catalog
	engine  trend.Aggregator
	now     func() time.Time
}

// NewTrendHandler creates a new trend handler
func NewTrendHandler(catalog trend.Catalog, engine trend.Aggregator) *TrendHandler {
	return &TrendHandler{
		catalog: catalog,
		engine:  engine,
		now:     time.Now,
	}
}

// Index returns API metadata and the endpoint list
func (h *TrendHandler) Index(w http.ResponseWriter, r *http.Request) {
	regions := h.catalog.RegionNames()
	respondWithJSON(w, http.StatusOK, indexResponse{
		Message:        "Fashion Trends API - Enhanced Version",
		Version:        APIVersion,
		SnapshotID:     h.catalog.SnapshotID(),
		RegionsCovered: regions,
		TotalRegions:   len(regions),
		Endpoints:      Endpoints,
	})
}

// Health reports liveness and the loaded dataset snapshot
func (h *TrendHandler) Health(w http.ResponseWriter, r *http.Request) {
	loadedAt := h.catalog.LoadedAt()
	respondWithJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		SnapshotID: h.catalog.SnapshotID(),
		LoadedAt:   loadedAt,
		Uptime:     h.now().Sub(loadedAt).Round(time.Second).String(),
	})
}

// GetTrends returns every region, or one region selected by the region query parameter
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	if trend.IsAll(region) {
		regions := h.catalog.Regions()
		data := make(orderedObject, 0, len(regions))
		for _, rg := range regions {
			data = append(data, keyedValue{Key: rg.Name, Value: rg.View()})
		}

		respondWithJSON(w, http.StatusOK, allRegionsResponse{
			Status:       statusSuccess,
			Data:         data,
			RegionsCount: len(regions),
			Timestamp:    h.now(),
		})
		return
	}

	h.respondWithRegion(w, trend.NormalizeRegion(region), "Region not found")
}

// GetRegionTrends returns one region selected by an underscore-form path segment
func (h *TrendHandler) GetRegionTrends(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "region")
	h.respondWithRegion(w, trend.NormalizeRegion(raw), fmt.Sprintf("Region '%s' not found", raw))
}

func (h *TrendHandler) respondWithRegion(w http.ResponseWriter, name, notFoundMessage string) {
	rg, err := h.catalog.Region(name)
	if err != nil {
		respondWithError(w, err, ErrorResponse{
			Message:          notFoundMessage,
			AvailableRegions: h.catalog.RegionNames(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, regionResponse{
		Status:    statusSuccess,
		Region:    rg.Name,
		Data:      rg.View(),
		Timestamp: h.now(),
	})
}

// GetTrendingColors returns colors ranked by popularity
func (h *TrendHandler) GetTrendingColors(w http.ResponseWriter, r *http.Request) {
	colors := h.engine.TrendingColors(r.URL.Query().Get("region"))

	respondWithJSON(w, http.StatusOK, colorsResponse{
		Status:      statusSuccess,
		Data:        colors,
		TotalColors: len(colors),
		Timestamp:   h.now(),
	})
}

// GetTrendingItems returns items ranked by growth, optionally limited
func (h *TrendHandler) GetTrendingItems(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"))
	items := h.engine.TrendingItems(r.URL.Query().Get("region"), limit)

	respondWithJSON(w, http.StatusOK, itemsResponse{
		Status:     statusSuccess,
		Data:       items,
		TotalItems: len(items),
		Timestamp:  h.now(),
	})
}

// GetAnalytics returns the cross-region analytics summary
func (h *TrendHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, analyticsResponse{
		Status: statusSuccess,
		Data:   h.engine.Summary(),
	})
}

// GetSeasonalTrends returns every season, or one season selected by the season query parameter
func (h *TrendHandler) GetSeasonalTrends(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")

	if trend.IsAll(season) {
		seasons := h.catalog.Seasons()
		data := make(orderedObject, 0, len(seasons))
		for _, s := range seasons {
			data = append(data, keyedValue{Key: s.Name, Value: s})
		}

		respondWithJSON(w, http.StatusOK, allSeasonsResponse{
			Status:    statusSuccess,
			Data:      data,
			Timestamp: h.now(),
		})
		return
	}

	s, err := h.catalog.Season(trend.NormalizeSeason(season))
	if err != nil {
		respondWithError(w, err, ErrorResponse{
			Message:          "Season not found",
			AvailableSeasons: h.catalog.SeasonNames(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, seasonResponse{
		Status:    statusSuccess,
		Season:    s.Name,
		Data:      s,
		Timestamp: h.now(),
	})
}

// GetInfluencerImpact returns influencer and social media impact data
func (h *TrendHandler) GetInfluencerImpact(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, influenceResponse{
		Status:    statusSuccess,
		Data:      h.catalog.Influence(),
		Timestamp: h.now(),
	})
}

// GetRegionalComparison compares the regions named by repeated regions parameters
func (h *TrendHandler) GetRegionalComparison(w http.ResponseWriter, r *http.Request) {
	var names []string
	for _, v := range r.URL.Query()["regions"] {
		if v = strings.TrimSpace(v); v != "" {
			names = append(names, v)
		}
	}

	comparisons := h.engine.CompareRegions(names)
	data := make(orderedObject, 0, len(comparisons))
	for _, c := range comparisons {
		data = append(data, keyedValue{Key: c.Region, Value: c})
	}

	respondWithJSON(w, http.StatusOK, comparisonResponse{
		Status:          statusSuccess,
		Data:            data,
		RegionsCompared: len(comparisons),
		Timestamp:       h.now(),
	})
}

// parseLimit reads an optional limit. Malformed or negative values count as
// absent, and zero means no limit.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
