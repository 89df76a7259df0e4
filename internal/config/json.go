package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version               string `json:"version"`
		AllowInsecureFallback bool   `json:"allow_insecure_fallback"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver     string `json:"driver"`
		DSN        string `json:"dsn"`
		Passphrase string `json:"passphrase"`
	} `json:"storage,omitempty"`

	Session struct {
		IdleTimeout Duration `json:"idle_timeout"`
	} `json:"session,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:               jsonCfg.App.Version,
			AllowInsecureFallback: jsonCfg.App.AllowInsecureFallback,
		},
		Storage: Storage{
			Driver:     jsonCfg.Storage.Driver,
			DSN:        jsonCfg.Storage.DSN,
			Passphrase: jsonCfg.Storage.Passphrase,
		},
		Session: Session{
			IdleTimeout: time.Duration(jsonCfg.Session.IdleTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
