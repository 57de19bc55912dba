package config

import "github.com/footprint-tools/cmdext/internal/domain"

// Provider implements domain.ConfigProvider over the default rc file,
// resolved on every call so CMDEXT_CONFIG and HOME changes apply.
type Provider struct{}

// NewProvider creates a provider for the default rc file.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	return update(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes a configuration value.
func (p *Provider) Unset(key string) error {
	return update(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func update(edit func([]string) []string) error {
	f, err := Default()
	if err != nil {
		return err
	}
	return f.Update(edit)
}

var _ domain.ConfigProvider = (*Provider)(nil)
