package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRewardsPolicyDefaults(t *testing.T) {
	policy, err := LoadRewardsPolicy("")
	require.NoError(t, err)

	assert.True(t, policy.ExchangeRate.Equal(decimal.NewFromInt(1)))
	assert.True(t, policy.CapFraction.Equal(decimal.NewFromInt(1)))
	assert.True(t, policy.RecommendedFraction.Equal(decimal.NewFromInt(1)))
	assert.True(t, policy.EarnRate.Equal(decimal.RequireFromString("0.05")))
}

func TestLoadRewardsPolicyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewards.yaml")
	content := []byte("exchange_rate: \"0.5\"\ncap_fraction: \"0.8\"\nearn_rate: \"0.1\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	policy, err := LoadRewardsPolicy(path)
	require.NoError(t, err)

	assert.True(t, policy.ExchangeRate.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, policy.CapFraction.Equal(decimal.RequireFromString("0.8")))
	assert.True(t, policy.EarnRate.Equal(decimal.RequireFromString("0.1")))
	// ค่าที่ไม่ได้ระบุในไฟล์ต้องคงค่า default
	assert.True(t, policy.RecommendedFraction.Equal(decimal.NewFromInt(1)))
}

func TestLoadRewardsPolicyInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero exchange rate", "exchange_rate: \"0\"\n"},
		{"cap above one", "cap_fraction: \"1.5\"\n"},
		{"negative earn rate", "earn_rate: \"-0.1\"\n"},
		{"not a number", "exchange_rate: \"abc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rewards.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := LoadRewardsPolicy(path)
			assert.Error(t, err)
		})
	}
}
