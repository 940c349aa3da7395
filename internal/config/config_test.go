package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("SENSOR_WS_URL", "")
	t.Setenv("SENSOR_ID", "")
	t.Setenv("VIBRATION_DB", "")
	t.Setenv("SENSOR_AUTH", "")

	cfg := FromEnv()
	if cfg.SensorURL != DefaultSensorURL {
		t.Errorf("SensorURL = %q, want default", cfg.SensorURL)
	}
	if cfg.SensorID != DefaultSensorID {
		t.Errorf("SensorID = %d, want default", cfg.SensorID)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.AuthLine != "" {
		t.Errorf("AuthLine = %q, want empty", cfg.AuthLine)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SENSOR_WS_URL", "ws://gateway:8081/")
	t.Setenv("SENSOR_ID", "3")
	t.Setenv("VIBRATION_DB", "/var/lib/vibe/samples.db")
	t.Setenv("SENSOR_AUTH", "Authorization: Basic abc")

	cfg := FromEnv()
	if cfg.SensorURL != "ws://gateway:8081/" {
		t.Errorf("SensorURL = %q", cfg.SensorURL)
	}
	if cfg.SensorID != 3 {
		t.Errorf("SensorID = %d, want 3", cfg.SensorID)
	}
	if cfg.DBPath != "/var/lib/vibe/samples.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AuthLine != "Authorization: Basic abc" {
		t.Errorf("AuthLine = %q", cfg.AuthLine)
	}
}

func TestFromEnvInvalidSensorID(t *testing.T) {
	cases := []string{"0", "6", "-1", "banana", "1.5"}
	for _, v := range cases {
		t.Run(v, func(t *testing.T) {
			t.Setenv("SENSOR_ID", v)
			cfg := FromEnv()
			if cfg.SensorID != DefaultSensorID {
				t.Errorf("SENSOR_ID=%q: SensorID = %d, want fallback %d", v, cfg.SensorID, DefaultSensorID)
			}
		})
	}
}

func TestValidSensorID(t *testing.T) {
	for id := 1; id <= 5; id++ {
		if !ValidSensorID(id) {
			t.Errorf("ValidSensorID(%d) = false, want true", id)
		}
	}
	for _, id := range []int{0, 6, -3, 100} {
		if ValidSensorID(id) {
			t.Errorf("ValidSensorID(%d) = true, want false", id)
		}
	}
}
