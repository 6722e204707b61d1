package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/shinji-kodama/mazegen/internal/model"
)

// Environment variables read by ApplyEnv.
const (
	EnvWidth  = "MAZEGEN_WIDTH"
	EnvHeight = "MAZEGEN_HEIGHT"
	EnvSeed   = "MAZEGEN_SEED"
)

// ApplyEnv loads envFile (if it exists) into the process environment and
// then overrides cfg with any MAZEGEN_* variables that are set.
//
// godotenv never overwrites variables that are already set, so the real
// environment beats the .env file. An empty envFile skips the file.
func ApplyEnv(cfg *Config, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("failed to load env file %s", envFile), err)
		}
	}

	if err := envInt(EnvWidth, &cfg.Width); err != nil {
		return err
	}
	if err := envInt(EnvHeight, &cfg.Height); err != nil {
		return err
	}

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return model.WrapCLIError(model.ExitConfigError,
				fmt.Sprintf("environment variable %s must be an integer", EnvSeed), err)
		}
		cfg.Seed = seed
	}
	return nil
}

// envInt overwrites *dst with the integer value of key, if set.
func envInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return model.WrapCLIError(model.ExitConfigError,
			fmt.Sprintf("environment variable %s must be an integer", key), err)
	}
	*dst = n
	return nil
}
