// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type App struct {
	Port     int    `yaml:"port" json:"port"`
	LogMode  string `yaml:"log_mode" json:"log_mode"` // dev | prod
	Timezone string `yaml:"timezone" json:"timezone"` // IANA name; "" or "Local" = host zone
}

// MaxRecommendations bounds scoring.top_n; confidence sums at most this many
// scores.
const MaxRecommendations = 3

// Scoring holds the fit-score weights and the confidence curve.
type Scoring struct {
	RequiredWeight       int `yaml:"required_weight" json:"required_weight"`
	GrowthWeight         int `yaml:"growth_weight" json:"growth_weight"`
	CategoryBoost        int `yaml:"category_boost" json:"category_boost"`
	TopN                 int `yaml:"top_n" json:"top_n"`
	ConfidenceMultiplier int `yaml:"confidence_multiplier" json:"confidence_multiplier"`
	ConfidenceFloor      int `yaml:"confidence_floor" json:"confidence_floor"`
	ConfidenceCeiling    int `yaml:"confidence_ceiling" json:"confidence_ceiling"`
	ConfidenceEmpty      int `yaml:"confidence_empty" json:"confidence_empty"`
}

type Matching struct {
	SampleSize        int `yaml:"sample_size" json:"sample_size"`
	BasePercent       int `yaml:"base_percent" json:"base_percent"`
	PerOverlapPercent int `yaml:"per_overlap_percent" json:"per_overlap_percent"`
}

type Analytics struct {
	DuplicateSessionThreshold int `yaml:"duplicate_session_threshold" json:"duplicate_session_threshold"`
	RefreshSeconds            int `yaml:"refresh_seconds" json:"refresh_seconds"`
}

type Limits struct {
	SubmissionsPerMinute float64 `yaml:"submissions_per_minute" json:"submissions_per_minute"`
	Burst                int     `yaml:"burst" json:"burst"`
}

type Auth struct {
	Issuer          string `yaml:"issuer" json:"issuer"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes" json:"token_ttl_minutes"`
	KeyringAccount  string `yaml:"keyring_account" json:"keyring_account"`
}

type Config struct {
	App       App       `yaml:"app" json:"app"`
	Scoring   Scoring   `yaml:"scoring" json:"scoring"`
	Matching  Matching  `yaml:"matching" json:"matching"`
	Analytics Analytics `yaml:"analytics" json:"analytics"`
	Limits    Limits    `yaml:"limits" json:"limits"`
	Auth      Auth      `yaml:"auth" json:"auth"`
}

func Default() Config {
	return Config{
		App: App{Port: 38471, LogMode: "dev", Timezone: "Local"},
		Scoring: Scoring{
			RequiredWeight:       2,
			GrowthWeight:         1,
			CategoryBoost:        2,
			TopN:                 3,
			ConfidenceMultiplier: 10,
			ConfidenceFloor:      35,
			ConfidenceCeiling:    100,
			ConfidenceEmpty:      25,
		},
		Matching:  Matching{SampleSize: 3, BasePercent: 60, PerOverlapPercent: 10},
		Analytics: Analytics{DuplicateSessionThreshold: 3, RefreshSeconds: 60},
		Limits:    Limits{SubmissionsPerMinute: 6, Burst: 3},
		Auth:      Auth{Issuer: "careerguide", TokenTTLMinutes: 60 * 24, KeyringAccount: "careerguide:jwt"},
	}
}

// Load reads path on top of Default, so keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Location resolves App.Timezone, falling back to the host zone.
func (a App) Location() *time.Location {
	if a.Timezone == "" || a.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
