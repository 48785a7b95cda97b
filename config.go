package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the defaults for the persistent flags. Flags override it.
type Config struct {
	Output  string
	Verbose bool
}

// LoadConfig reads BREWCALC_* variables from the environment, after loading
// any .env files given (or ./.env when none are). Missing files are ignored;
// a file that exists but cannot be read or parsed is an error.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	verbose, err := strconv.ParseBool(getEnv("BREWCALC_VERBOSE", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid BREWCALC_VERBOSE: %w", err)
	}

	output := getEnv("BREWCALC_OUTPUT", "text")
	if !validOutput(output) {
		return Config{}, fmt.Errorf("invalid BREWCALC_OUTPUT: %q", output)
	}

	return Config{Output: output, Verbose: verbose}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
