package qgate

const defaultTolerance = 1e-9

type Config struct {
	// Tolerance is the per-entry absolute error accepted by unitarity checks.
	Tolerance float64
}

func NewConfig() *Config {
	return &Config{
		Tolerance: defaultTolerance,
	}
}

// tolerance falls back to the default when the config leaves it unset.
func (c *Config) tolerance() float64 {
	if c != nil && c.Tolerance > 0 {
		return c.Tolerance
	}
	return defaultTolerance
}
