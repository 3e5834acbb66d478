package config

import (
	"log"
	"sort"
)

// Validate checks the config for unrecognized fields and logs warnings.
// Unknown fields never fail the load.
func Validate(cfg *Config) {
	warnOverflow("config", cfg.Overflow)
	warnOverflow("general_settings", cfg.GeneralSettings.Overflow)
	warnOverflow("ocr_settings", cfg.OCRSettings.Overflow)
	warnOverflow("image_settings", cfg.ImageSettings.Overflow)
}

func warnOverflow(section string, overflow map[string]any) {
	if len(overflow) == 0 {
		return
	}
	keys := make([]string, 0, len(overflow))
	for k := range overflow {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		log.Printf("[WARNING] Unrecognized config field %s.%s — field will be ignored", section, k)
	}
}
