// Package config holds the environment configuration surface for the
// ingest daemon. Values fall back to safe defaults; only the store
// path and stream address are genuinely required, and both have local
// development defaults.
package config

import (
	"log"
	"os"
	"strconv"
)

const (
	// DefaultSensorURL is the local development gateway address.
	DefaultSensorURL = "ws://127.0.0.1:8081/"

	// DefaultDBPath is the SQLite database file.
	DefaultDBPath = "vibration_data.db"

	// DefaultSensorID tags rows when no valid identifier is supplied.
	DefaultSensorID = 1
)

// Config is the process configuration for the ingest daemon.
type Config struct {
	// SensorURL is the websocket address of the sensor gateway.
	SensorURL string

	// SensorID tags every persisted row. Must be in the allowed set.
	SensorID int

	// DBPath is the SQLite database file path.
	DBPath string

	// AuthLine, when set, is sent to the gateway on connect.
	AuthLine string
}

// allowedSensorIDs is the fixed fleet of deployed sensors.
var allowedSensorIDs = map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true}

// ValidSensorID reports whether id belongs to the deployed fleet.
func ValidSensorID(id int) bool {
	return allowedSensorIDs[id]
}

// FromEnv builds a Config from the process environment. An invalid or
// unparseable SENSOR_ID falls back to the default with a logged
// warning rather than failing: a mislabelled row set is recoverable, a
// dead ingest is not.
func FromEnv() Config {
	cfg := Config{
		SensorURL: DefaultSensorURL,
		SensorID:  DefaultSensorID,
		DBPath:    DefaultDBPath,
	}

	if v := os.Getenv("SENSOR_WS_URL"); v != "" {
		cfg.SensorURL = v
	}
	if v := os.Getenv("VIBRATION_DB"); v != "" {
		cfg.DBPath = v
	}
	cfg.AuthLine = os.Getenv("SENSOR_AUTH")

	if v := os.Getenv("SENSOR_ID"); v != "" {
		id, err := strconv.Atoi(v)
		switch {
		case err != nil:
			log.Printf("invalid SENSOR_ID %q, using sensor %d", v, DefaultSensorID)
		case !ValidSensorID(id):
			log.Printf("SENSOR_ID %d is not a deployed sensor, using sensor %d", id, DefaultSensorID)
		default:
			cfg.SensorID = id
		}
	}

	return cfg
}
