package recommend

const (
	defaultStandardDepth = 3
	defaultPremiumDepth  = 6
	defaultRoutineSize   = 8

	// paid tiers always show more than the single general pick
	minPaidDepth = 2
)

type Config struct {
	StandardDepth int
	PremiumDepth  int

	// how many of the top ranked products are considered for the routine
	RoutineSize  int
	RoutineRules []RoutineRule
}

func DefaultConfig() Config {
	return Config{
		StandardDepth: defaultStandardDepth,
		PremiumDepth:  defaultPremiumDepth,
		RoutineSize:   defaultRoutineSize,
		RoutineRules:  DefaultRoutineRules(),
	}
}

// withDefaults fills unset fields and raises paid depths to the minimum.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.StandardDepth == 0 {
		c.StandardDepth = d.StandardDepth
	}
	if c.PremiumDepth == 0 {
		c.PremiumDepth = d.PremiumDepth
	}
	if c.StandardDepth < minPaidDepth {
		c.StandardDepth = minPaidDepth
	}
	if c.PremiumDepth < minPaidDepth {
		c.PremiumDepth = minPaidDepth
	}
	if c.RoutineSize <= 0 {
		c.RoutineSize = d.RoutineSize
	}
	if len(c.RoutineRules) == 0 {
		c.RoutineRules = d.RoutineRules
	}
	return c
}
