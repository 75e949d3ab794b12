package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RewardsPolicy คือ business policy ของระบบ reward ทั้งหมด
// ฝั่ง server เป็นเจ้าของค่าเหล่านี้ client แค่ mirror ค่าจาก quote ที่ตอบกลับไป
type RewardsPolicy struct {
	// ExchangeRate แปลง point เป็นจำนวนเงิน (หน่วยเงินต่อ 1 point)
	// เช่น 1 หมายถึง 1 point = ₹1
	ExchangeRate decimal.Decimal
	// CapFraction สัดส่วนสูงสุดของมูลค่า order ที่ยอมให้ใช้ point แทนได้ (0-1)
	CapFraction decimal.Decimal
	// RecommendedFraction สัดส่วนของ max ที่จะแนะนำให้ user เป็นค่าเริ่มต้น
	RecommendedFraction decimal.Decimal
	// EarnRate สัดส่วนของยอดจ่ายจริงที่จะสะสมกลับเป็น point
	EarnRate decimal.Decimal
}

// โครงสร้างไฟล์ yaml ใช้ string เพื่อแปลงเป็น decimal เองโดยไม่ผ่าน float64
type rewardsPolicyFile struct {
	ExchangeRate        string `yaml:"exchange_rate"`
	CapFraction         string `yaml:"cap_fraction"`
	RecommendedFraction string `yaml:"recommended_fraction"`
	EarnRate            string `yaml:"earn_rate"`
}

func defaultRewardsPolicy() RewardsPolicy {
	return RewardsPolicy{
		ExchangeRate:        decimal.NewFromInt(1),
		CapFraction:         decimal.NewFromInt(1),
		RecommendedFraction: decimal.NewFromInt(1),
		EarnRate:            decimal.RequireFromString("0.05"),
	}
}

// LoadRewardsPolicy อ่าน policy จากไฟล์ yaml ถ้าไม่ระบุ path จะใช้ค่า default
func LoadRewardsPolicy(path string) (RewardsPolicy, error) {
	policy := defaultRewardsPolicy()
	if len(path) == 0 {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return RewardsPolicy{}, fmt.Errorf("failed to read rewards policy file: %w", err)
	}

	var file rewardsPolicyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return RewardsPolicy{}, fmt.Errorf("failed to parse rewards policy file: %w", err)
	}

	// ค่าที่ไม่ระบุในไฟล์ให้คงค่า default ไว้
	if err := overrideDecimal(&policy.ExchangeRate, file.ExchangeRate, "exchange_rate"); err != nil {
		return RewardsPolicy{}, err
	}
	if err := overrideDecimal(&policy.CapFraction, file.CapFraction, "cap_fraction"); err != nil {
		return RewardsPolicy{}, err
	}
	if err := overrideDecimal(&policy.RecommendedFraction, file.RecommendedFraction, "recommended_fraction"); err != nil {
		return RewardsPolicy{}, err
	}
	if err := overrideDecimal(&policy.EarnRate, file.EarnRate, "earn_rate"); err != nil {
		return RewardsPolicy{}, err
	}

	if err := policy.Validate(); err != nil {
		return RewardsPolicy{}, err
	}
	return policy, nil
}

func (p RewardsPolicy) Validate() error {
	if !p.ExchangeRate.IsPositive() {
		return fmt.Errorf("exchange_rate must be greater than 0")
	}
	if p.CapFraction.IsNegative() || p.CapFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("cap_fraction must be between 0 and 1")
	}
	if p.RecommendedFraction.IsNegative() || p.RecommendedFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("recommended_fraction must be between 0 and 1")
	}
	if p.EarnRate.IsNegative() {
		return fmt.Errorf("earn_rate must not be negative")
	}
	return nil
}

func overrideDecimal(dst *decimal.Decimal, raw string, field string) error {
	if len(raw) == 0 {
		return nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", field, err)
	}
	*dst = v
	return nil
}
