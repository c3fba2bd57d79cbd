package signalwall

import (
	"testing"
	"time"
)

func TestSetDefaults(t *testing.T) {
	tests := []struct {
		name       string
		in         SiteConfig
		wantLimit  int
		wantWindow time.Duration
		wantDays   int
	}{
		{"zero", SiteConfig{}, 10, time.Minute, 365},
		{"negative", SiteConfig{SubmitLimit: -3, SubmitWindow: -time.Second, AnalyticsRetentionDays: -1}, 10, time.Minute, 365},
		{"set", SiteConfig{SubmitLimit: 2, SubmitWindow: time.Hour, AnalyticsRetentionDays: 30}, 2, time.Hour, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.setDefaults()
			if cfg.SubmitLimit != tt.wantLimit || cfg.SubmitWindow != tt.wantWindow || cfg.AnalyticsRetentionDays != tt.wantDays {
				t.Errorf("got limit=%d window=%v days=%d", cfg.SubmitLimit, cfg.SubmitWindow, cfg.AnalyticsRetentionDays)
			}
		})
	}
}
