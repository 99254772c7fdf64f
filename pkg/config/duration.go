package config

import "time"

// Duration is a time.Duration written as a Go duration string ("90s",
// "10m") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration, "0s" for zero.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
