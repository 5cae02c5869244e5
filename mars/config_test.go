package mars

import "testing"

func baseConfig() Config {
	return Config{
		CoreSize: 8000, MaxCycles: 80000, MaxProcesses: 8000,
		ReadLimit: 8000, WriteLimit: 8000,
		MinDistance: 100, MaxWarriorLength: 100,
		Rounds: 10, Seed: 1,
	}
}

func TestConfigValidateAccepts(t *testing.T) {
	if err := baseConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConfigValidateRejectsSmallCore(t *testing.T) {
	c := baseConfig()
	c.CoreSize = 1
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for core_size below minimum")
	}
}

func TestConfigValidateMinDistanceMustExceedWarriorLength(t *testing.T) {
	c := baseConfig()
	c.MinDistance = 50
	c.MaxWarriorLength = 100
	if err := c.Validate(); err == nil {
		t.Fatal("expected error when min_distance < max_warrior_length")
	}
}

func TestConfigValidateBoundaryMinDistanceEqualsWarriorLength(t *testing.T) {
	c := baseConfig()
	c.MinDistance = 100
	c.MaxWarriorLength = 100
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error at equal boundary: %v", err)
	}
}

func TestConfigValidateBoundaryMinDistanceHalfCore(t *testing.T) {
	c := baseConfig()
	c.CoreSize = 200
	c.MinDistance = 100
	c.MaxWarriorLength = 100
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error at min_distance == core_size/2: %v", err)
	}
}

func TestConfigValidateReadWriteLimitOne(t *testing.T) {
	c := baseConfig()
	c.ReadLimit = 1
	c.WriteLimit = 1
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error with read/write limit of 1: %v", err)
	}
}

func TestConfigValidateRejectsZeroPlacements(t *testing.T) {
	c := baseConfig()
	c.CoreSize = 200
	c.MinDistance = 100
	c.MaxWarriorLength = 100
	c.MinDistance = 100 // placements = 200 - 200 + 1 = 1, still valid
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
