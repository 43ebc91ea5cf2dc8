package cmd

import (
	"fmt"
	"strconv"
)

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	PriorityRefreshSchedule string
	AutoAssignSchedule      string
	SeedFile                string
	SeedSample              string
	SeedSampleSize          string
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// SampleEnabled reports whether SEED_SAMPLE asks for a generated board.
func (c Config) SampleEnabled() bool {
	enabled, err := strconv.ParseBool(c.SeedSample)
	return err == nil && enabled
}

// SampleSize returns SEED_SAMPLE_SIZE, or zero when unset or malformed.
func (c Config) SampleSize() int {
	n, err := strconv.Atoi(c.SeedSampleSize)
	if err != nil {
		return 0
	}
	return n
}
