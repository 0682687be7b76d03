package domain

import "encoding/json"

// Team is a HubSpot team, used for display and as an opaque id on
// later permission calls.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is a HubSpot account user.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Page is a HubSpot landing page. Widgets and LayoutSections are kept
// as raw JSON: the clone flow copies them verbatim from the template
// and never inspects them.
type Page struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Slug            string          `json:"slug,omitempty"`
	HTMLTitle       string          `json:"htmlTitle,omitempty"`
	TemplatePath    string          `json:"templatePath,omitempty"`
	Language        string          `json:"language,omitempty"`
	WebsitePageType string          `json:"websitePageType,omitempty"`
	Widgets         json.RawMessage `json:"widgets,omitempty"`
	LayoutSections  json.RawMessage `json:"layoutSections,omitempty"`
	MetaDescription string          `json:"metaDescription,omitempty"`
}
