package qbit

type Config struct {
	Tolerance float64
	Encoding  Encoding
	Seed      uint64
	Workers   int
	Shots     int
	BatchSize int
}

func NewConfig() *Config {
	return &Config{
		Tolerance: DefaultTolerance,
		Encoding:  Polar,
		Seed:      1,
		Workers:   4,
		Shots:     1024,
		BatchSize: 128,
	}
}
