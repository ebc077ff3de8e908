package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		IdentityAddress string `json:"identity_address"`
	} `json:"app,omitempty"`

	Adapter struct {
		LoginURL       string   `json:"login_url"`
		UpdateURL      string   `json:"update_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Updates struct {
		MinCount int `json:"min_count"`
		MaxCount int `json:"max_count"`
	} `json:"updates,omitempty"`

	Workers struct {
		RetryDelay    Duration `json:"retry_delay"`
		RequestDelay  Duration `json:"request_delay"`
		ExtraRequests int      `json:"extra_requests"`
	} `json:"workers,omitempty"`
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
			IdentityAddress: jsonCfg.App.IdentityAddress,
		},
		Adapter: Adapter{
			LoginURL:       jsonCfg.Adapter.LoginURL,
			UpdateURL:      jsonCfg.Adapter.UpdateURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Updates: Updates{
			MinCount: jsonCfg.Updates.MinCount,
			MaxCount: jsonCfg.Updates.MaxCount,
		},
		Workers: Workers{
			RetryDelay:    time.Duration(jsonCfg.Workers.RetryDelay),
			RequestDelay:  time.Duration(jsonCfg.Workers.RequestDelay),
			ExtraRequests: jsonCfg.Workers.ExtraRequests,
		},
		JSONFilePath: "",
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
