package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/viper"
)

const defaultBaseURL = "https://api.hubapi.com"

// Config is built once at process start and passed by reference into
// the client and orchestrator constructors. Nothing reads the
// environment after Load returns.
type Config struct {
	Port              int
	HubSpotToken      string
	HubSpotBaseURL    string
	PortalID          string
	DefaultTemplateID string
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.HubSpotToken, validation.Required),
		validation.Field(&c.HubSpotBaseURL, validation.Required, is.URL),
	)
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3000)
	v.SetDefault("HUBSPOT_BASE_URL", defaultBaseURL)

	cfg := Config{
		Port:              v.GetInt("PORT"),
		HubSpotToken:      v.GetString("HUBSPOT_TOKEN"),
		HubSpotBaseURL:    v.GetString("HUBSPOT_BASE_URL"),
		PortalID:          v.GetString("HUBSPOT_PORTAL_ID"),
		DefaultTemplateID: v.GetString("DEFAULT_TEMPLATE_ID"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// HTTPAddr is the listen address for the HTTP server.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// EditURL builds the human-facing HubSpot editor link for a page.
func (c Config) EditURL(pageID string) string {
	return fmt.Sprintf("https://app.hubspot.com/pages/%s/edit/%s", c.PortalID, pageID)
}
