// internal/models/banner_test.go
package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBannerIsLive(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		banner Banner
		live   bool
	}{
		{"active with no window", Banner{Active: true}, true},
		{"inactive", Banner{Active: false}, false},
		{"inside window", Banner{Active: true, StartDate: &yesterday, EndDate: &tomorrow}, true},
		{"before window", Banner{Active: true, StartDate: &tomorrow}, false},
		{"after window", Banner{Active: true, EndDate: &yesterday}, false},
		{"inactive inside window", Banner{Active: false, StartDate: &yesterday, EndDate: &tomorrow}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.live, tt.banner.IsLive(now))
		})
	}
}

func TestBannerTypeValid(t *testing.T) {
	assert.True(t, BannerTypeHero.Valid())
	assert.True(t, BannerTypePromo.Valid())
	assert.True(t, BannerTypeSeasonal.Valid())
	assert.False(t, BannerType("popup").Valid())
	assert.False(t, BannerType("").Valid())
}
