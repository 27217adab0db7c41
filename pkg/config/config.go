// Package config supplies the recharge schedule: the mapping from bank
// transaction codes to coin amounts. The schedule is injected into the
// contract at construction and validated there, never consulted as a global.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
)

// RechargeSchedule maps a bank transaction code to the coin amount it
// credits.
type RechargeSchedule map[string]int64

// DefaultRechargeSchedule returns the network's stock denominations.
func DefaultRechargeSchedule() RechargeSchedule {
	return RechargeSchedule{
		"upg100":  100,
		"upg500":  500,
		"upg1000": 1000,
	}
}

// Validate rejects an empty schedule and any code with a non-positive
// amount.
func (s RechargeSchedule) Validate() error {
	if len(s) == 0 {
		return errdefs.NewValidationError("recharge schedule", "must contain at least one transaction code")
	}
	for code, amount := range s {
		if code == "" {
			return errdefs.NewValidationError("recharge schedule", "transaction code must not be empty")
		}
		if amount <= 0 {
			return errdefs.NewValidationError("recharge schedule",
				fmt.Sprintf("amount for code %q must be positive, got %d", code, amount))
		}
	}
	return nil
}

// Amount resolves a transaction code. Unknown codes fail validation.
func (s RechargeSchedule) Amount(code string) (int64, error) {
	amount, ok := s[code]
	if !ok {
		return 0, errdefs.NewValidationError("bank transaction id", fmt.Sprintf("unknown transaction code %q", code))
	}
	return amount, nil
}

type envConfig struct {
	// RechargeScheduleFile points at an optional YAML file overriding the
	// default schedule.
	RechargeScheduleFile string `env:"RECHARGE_SCHEDULE_FILE"`
}

// Load returns the recharge schedule to run with: the YAML file named by
// RECHARGE_SCHEDULE_FILE when set, the defaults otherwise. The result is
// validated before being returned.
func Load() (RechargeSchedule, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	schedule := DefaultRechargeSchedule()
	if cfg.RechargeScheduleFile != "" {
		loaded, err := loadScheduleFile(cfg.RechargeScheduleFile)
		if err != nil {
			return nil, err
		}
		schedule = loaded
	}

	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

func loadScheduleFile(path string) (RechargeSchedule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recharge schedule %q: %w", path, err)
	}
	var schedule RechargeSchedule
	if err := yaml.Unmarshal(raw, &schedule); err != nil {
		return nil, fmt.Errorf("failed to parse recharge schedule %q: %w", path, err)
	}
	return schedule, nil
}
