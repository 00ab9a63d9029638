package models

// ConfigurationResponse is the diagnostics view of a resolved configuration.
type ConfigurationResponse struct {
	// RawProfile is the trimmed profile activation signal ("dev" when blank).
	RawProfile string `json:"raw_profile"`

	// Profile is the profile whose defaults were applied.
	Profile string `json:"profile"`

	// Options lists every option in catalog order.
	Options []OptionView `json:"options"`
}

// OptionView is a single resolved option.
type OptionView struct {
	// Key is the option name (e.g. "asset.minification").
	Key string `json:"key"`

	// Type is the declared type: string, boolean, integer or list.
	Type string `json:"type"`

	// Value is the coerced value.
	Value any `json:"value"`

	// Origin names the source that supplied the value, or "default".
	Origin string `json:"origin"`
}

// BuildInfoResponse carries build metadata.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
