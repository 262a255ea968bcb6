package config

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"
)

// Configuration is the flat on-disk configuration of one warmsim run.
type Configuration struct {
	Seed int64 `json:"Seed"`

	// Variant selects the timer source - "simulated" or "measured".
	Variant string `json:"Variant"`

	Rounds          int `json:"Rounds"`
	RoundDelayMilli int `json:"RoundDelayMilli"`
	HistoryLength   int `json:"HistoryLength"`

	OutputPathPrefix string `json:"OutputPathPrefix"`
	EnablePlotting   bool   `json:"EnablePlotting"`
}

func ReadConfigurationFile(path string) Configuration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var config Configuration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		log.Fatal(err)
	}

	return config
}
