package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

// Store backend identifiers
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port            int
	StoreType       string
	StorePath       string
	PersistInterval time.Duration
	SweepInterval   time.Duration
}

// ParseFlags validates flags and applies env fallbacks and defaults.
// CLI flags take precedence over environment variables.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var persistEvery, sweepEvery string

	fs := flag.NewFlagSet("chalkboard", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (file, sqlite, or postgres)")
	fs.StringVar(&cfg.StorePath, "s", "", "Store path (file path, sqlite path, or postgres URL)")
	fs.StringVar(&persistEvery, "persist-every", "", "Snapshot write interval (e.g. 30s)")
	fs.StringVar(&sweepEvery, "sweep-every", "", "Eviction sweep interval (e.g. 60s)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8741 // default
		}
	}

	if cfg.StoreType == "" {
		cfg.StoreType = os.Getenv("STORE_TYPE")
		if cfg.StoreType == "" {
			cfg.StoreType = StoreFile
		}
	}
	switch cfg.StoreType {
	case StoreFile, StoreSQLite, StorePostgres:
	default:
		return Config{}, errors.New("store type must be file, sqlite, or postgres")
	}

	if cfg.StorePath == "" {
		cfg.StorePath = os.Getenv("STORE_PATH")
	}
	if cfg.StorePath == "" {
		switch cfg.StoreType {
		case StoreFile:
			cfg.StorePath = "./chalkboard.json"
		case StoreSQLite:
			cfg.StorePath = "./chalkboard.db"
		case StorePostgres:
			return Config{}, errors.New("postgres store requires a URL (use -s or STORE_PATH env)")
		}
	}

	if persistEvery == "" {
		persistEvery = os.Getenv("PERSIST_INTERVAL")
	}
	if persistEvery == "" {
		cfg.PersistInterval = 30 * time.Second
	} else {
		d, err := time.ParseDuration(persistEvery)
		if err != nil || d <= 0 {
			return Config{}, errors.New("persist interval must be a positive duration")
		}
		cfg.PersistInterval = d
	}

	if sweepEvery == "" {
		sweepEvery = os.Getenv("SWEEP_INTERVAL")
	}
	if sweepEvery == "" {
		cfg.SweepInterval = 60 * time.Second
	} else {
		d, err := time.ParseDuration(sweepEvery)
		if err != nil || d <= 0 {
			return Config{}, errors.New("sweep interval must be a positive duration")
		}
		cfg.SweepInterval = d
	}

	return cfg, nil
}
