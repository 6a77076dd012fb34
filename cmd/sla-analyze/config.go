package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DuyTa506/docuflow/hierarchy"
	"github.com/DuyTa506/docuflow/spatial"
)

// AppConfig is the YAML-loadable shape of spatial.Config (spec.md §6:
// "configuration as a caller concern"), following the teacher's
// XxxConfig / DefaultXxxConfig convention down to the sub-config split
// (filters and spatial weights each get their own nested block; spatial
// thresholds are a six-number list and the thinning tunables are
// top-level keys). Every field is a pointer so a YAML file only
// needs to name the tunables it overrides; everything else keeps
// spatial.DefaultConfig's value.
type AppConfig struct {
	UseFilters            *bool `yaml:"use_filters"`
	UseZoneClassification *bool `yaml:"use_zone_classification"`
	UseReadingOrder       *bool `yaml:"use_reading_order"`
	UseMarkdownValidation *bool `yaml:"use_markdown_validation"`
	UseAdaptiveThresholds *bool `yaml:"use_adaptive_thresholds"`
	UseThinning           *bool `yaml:"use_thinning"`

	Filters    *FiltersConfig `yaml:"filters"`
	Weights    *WeightsConfig `yaml:"spatial_weights"`
	Thresholds *[6]float64    `yaml:"spatial_thresholds"`

	ThinningGapMultiplier *float64 `yaml:"thinning_gap_threshold_multiplier"`
	UseDynamicGap         *bool    `yaml:"thinning_use_dynamic_gap"`
}

// FiltersConfig mirrors filters.Config's tunables for YAML round-tripping.
type FiltersConfig struct {
	MinRepeatPages  *int     `yaml:"min_repeat_pages"`
	MinAreaRatio    *float64 `yaml:"min_area_ratio"`
	MaxAreaRatio    *float64 `yaml:"max_area_ratio"`
	MarginRatio     *float64 `yaml:"margin_ratio"`
	UseMarginFilter *bool    `yaml:"use_margin_filter"`
}

// WeightsConfig mirrors hierarchy.Weights.
type WeightsConfig struct {
	Label      *float64 `yaml:"label"`
	Whitespace *float64 `yaml:"whitespace"`
	Size       *float64 `yaml:"size"`
	Vertical   *float64 `yaml:"vertical"`
	Indent     *float64 `yaml:"indent"`
}

// LoadConfig reads path as YAML and overlays it onto spatial.DefaultConfig.
// An empty path returns the defaults untouched, matching the teacher's
// "no configuration file, using defaults" fallback.
func LoadConfig(path string) (spatial.Config, error) {
	cfg := spatial.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read configuration file: %w", err)
	}

	var app AppConfig
	if err := yaml.Unmarshal(data, &app); err != nil {
		return cfg, fmt.Errorf("unable to parse configuration file: %w", err)
	}

	applyOverlay(&cfg, app)
	return cfg, nil
}

func applyOverlay(cfg *spatial.Config, app AppConfig) {
	setBool(&cfg.UseFilters, app.UseFilters)
	setBool(&cfg.UseZoneClassification, app.UseZoneClassification)
	setBool(&cfg.UseReadingOrder, app.UseReadingOrder)
	setBool(&cfg.UseMarkdownValidation, app.UseMarkdownValidation)
	setBool(&cfg.UseAdaptiveThresholds, app.UseAdaptiveThresholds)
	setBool(&cfg.UseThinning, app.UseThinning)
	setBool(&cfg.UseDynamicGap, app.UseDynamicGap)

	if app.ThinningGapMultiplier != nil {
		cfg.ThinningGapMultiplier = *app.ThinningGapMultiplier
	}

	if app.Filters != nil {
		if app.Filters.MinRepeatPages != nil {
			cfg.Filters.MinRepeatPages = *app.Filters.MinRepeatPages
		}
		if app.Filters.MinAreaRatio != nil {
			cfg.Filters.MinAreaRatio = *app.Filters.MinAreaRatio
		}
		if app.Filters.MaxAreaRatio != nil {
			cfg.Filters.MaxAreaRatio = *app.Filters.MaxAreaRatio
		}
		if app.Filters.MarginRatio != nil {
			cfg.Filters.MarginRatio = *app.Filters.MarginRatio
		}
		setBool(&cfg.Filters.UseMarginFilter, app.Filters.UseMarginFilter)
	}

	if app.Weights != nil {
		setFloat(&cfg.SpatialWeights.Label, app.Weights.Label)
		setFloat(&cfg.SpatialWeights.Whitespace, app.Weights.Whitespace)
		setFloat(&cfg.SpatialWeights.Size, app.Weights.Size)
		setFloat(&cfg.SpatialWeights.Vertical, app.Weights.Vertical)
		setFloat(&cfg.SpatialWeights.Indent, app.Weights.Indent)
	}

	if app.Thresholds != nil {
		t := hierarchy.Thresholds(*app.Thresholds)
		cfg.SpatialThresholds = &t
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// DumpConfig renders cfg back to YAML, the same "dumpconfig" shape the
// teacher's fbc command exposes for inspecting the active configuration.
func DumpConfig(cfg spatial.Config) ([]byte, error) {
	app := AppConfig{
		UseFilters:            &cfg.UseFilters,
		UseZoneClassification: &cfg.UseZoneClassification,
		UseReadingOrder:       &cfg.UseReadingOrder,
		UseMarkdownValidation: &cfg.UseMarkdownValidation,
		UseAdaptiveThresholds: &cfg.UseAdaptiveThresholds,
		UseThinning:           &cfg.UseThinning,
		UseDynamicGap:         &cfg.UseDynamicGap,
		ThinningGapMultiplier: &cfg.ThinningGapMultiplier,
		Filters: &FiltersConfig{
			MinRepeatPages:  &cfg.Filters.MinRepeatPages,
			MinAreaRatio:    &cfg.Filters.MinAreaRatio,
			MaxAreaRatio:    &cfg.Filters.MaxAreaRatio,
			MarginRatio:     &cfg.Filters.MarginRatio,
			UseMarginFilter: &cfg.Filters.UseMarginFilter,
		},
		Weights: &WeightsConfig{
			Label:      &cfg.SpatialWeights.Label,
			Whitespace: &cfg.SpatialWeights.Whitespace,
			Size:       &cfg.SpatialWeights.Size,
			Vertical:   &cfg.SpatialWeights.Vertical,
			Indent:     &cfg.SpatialWeights.Indent,
		},
	}
	if cfg.SpatialThresholds != nil {
		t := [6]float64(*cfg.SpatialThresholds)
		app.Thresholds = &t
	}
	return yaml.Marshal(app)
}
