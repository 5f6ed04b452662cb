package config

import (
	"fmt"
	"strings"
	"time"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg and the validation
// result for it.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.LogMode = strings.ToLower(strings.TrimSpace(out.App.LogMode))
	out.App.Timezone = strings.TrimSpace(out.App.Timezone)
	out.Auth.Issuer = strings.TrimSpace(out.Auth.Issuer)
	out.Auth.KeyringAccount = strings.TrimSpace(out.Auth.KeyringAccount)

	// ---- app ----
	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	switch out.App.LogMode {
	case "", "dev", "development", "prod", "production":
	default:
		res.addErr("app.log_mode must be dev or prod (got %q)", out.App.LogMode)
	}
	if out.App.Timezone != "" {
		if _, err := time.LoadLocation(out.App.Timezone); err != nil {
			res.addErr("app.timezone %q is not a known location", out.App.Timezone)
		}
	}

	// ---- scoring ----
	s := out.Scoring
	if s.RequiredWeight < 0 || s.GrowthWeight < 0 || s.CategoryBoost < 0 {
		res.addErr("scoring weights must be >= 0")
	}
	if s.RequiredWeight < s.GrowthWeight {
		res.addWarn("scoring.required_weight (%d) is below growth_weight (%d); aspiration will outrank readiness.", s.RequiredWeight, s.GrowthWeight)
	}
	if s.TopN <= 0 || s.TopN > MaxRecommendations {
		res.addErr("scoring.top_n must be 1..%d", MaxRecommendations)
	}
	if s.ConfidenceMultiplier <= 0 {
		res.addErr("scoring.confidence_multiplier must be > 0")
	}
	if s.ConfidenceFloor < 0 || s.ConfidenceCeiling > 100 || s.ConfidenceFloor > s.ConfidenceCeiling {
		res.addErr("scoring confidence bounds must satisfy 0 <= floor <= ceiling <= 100")
	}
	if s.ConfidenceEmpty < 0 || s.ConfidenceEmpty > 100 {
		res.addErr("scoring.confidence_empty must be 0..100")
	}

	// ---- matching ----
	if out.Matching.SampleSize <= 0 {
		res.addErr("matching.sample_size must be > 0")
	}
	if out.Matching.BasePercent < 0 || out.Matching.BasePercent > 100 {
		res.addErr("matching.base_percent must be 0..100")
	}
	if out.Matching.PerOverlapPercent < 0 {
		res.addErr("matching.per_overlap_percent must be >= 0")
	}

	// ---- analytics ----
	if out.Analytics.DuplicateSessionThreshold <= 0 {
		res.addErr("analytics.duplicate_session_threshold must be > 0")
	}
	if out.Analytics.RefreshSeconds < 0 {
		res.addErr("analytics.refresh_seconds must be >= 0 (0 disables the refresh loop)")
	} else if out.Analytics.RefreshSeconds > 0 && out.Analytics.RefreshSeconds < 5 {
		res.addWarn("analytics.refresh_seconds is very low (%d); every tick rereads all sessions.", out.Analytics.RefreshSeconds)
	}

	// ---- limits ----
	if out.Limits.SubmissionsPerMinute <= 0 {
		res.addErr("limits.submissions_per_minute must be > 0")
	}
	if out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0")
	}

	// ---- auth ----
	if out.Auth.Issuer == "" {
		res.addErr("auth.issuer is required")
	}
	if out.Auth.TokenTTLMinutes <= 0 {
		res.addErr("auth.token_ttl_minutes must be > 0")
	}
	if out.Auth.KeyringAccount == "" {
		res.addWarn("auth.keyring_account is empty; the signing secret must come from ENGINE_JWT_SECRET.")
	}

	return out, res
}
