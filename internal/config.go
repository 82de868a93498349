package internal

import (
	"cmp"
	"fmt"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/sowilo/internal/pptx"
)

// Auth modes.
const (
	AuthModeDisabled = "disabled"
	AuthModeToken    = "token"
)

var hexColorPattern = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Config represents the application configuration.
type Config struct {
	App       ApplicationConfig `yaml:"app"`
	Convert   ConvertConfig     `yaml:"convert"`
	Auth      AuthConfig        `yaml:"auth"`
	Templates []TemplateConfig  `yaml:"templates"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Convert.Validate(); err != nil {
		return err
	}
	for i := range c.Templates {
		if err := c.Templates[i].Validate(); err != nil {
			return fmt.Errorf("template %q: %w", c.Templates[i].Name, err)
		}
	}
	return c.Auth.Validate()
}

// CustomTemplates materializes the configured custom templates.
func (c *Config) CustomTemplates() []pptx.Template {
	templates := make([]pptx.Template, 0, len(c.Templates))
	for i := range c.Templates {
		templates = append(templates, c.Templates[i].Template())
	}
	return templates
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ConvertConfig holds conversion defaults.
type ConvertConfig struct {
	DefaultTemplate string `yaml:"default_template"`
}

// Validate validates the conversion configuration.
func (c *ConvertConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DefaultTemplate, validation.Required),
	)
}

// TemplateConfig defines a custom slide template in the config file.
// Unset colors and fonts inherit from the default template.
type TemplateConfig struct {
	Name   string         `yaml:"name"`
	Colors TemplateColors `yaml:"colors"`
	Fonts  TemplateFonts  `yaml:"fonts"`
}

// TemplateColors holds the hex color overrides for a custom template.
type TemplateColors struct {
	Background    string `yaml:"background"`
	TextPrimary   string `yaml:"text_primary"`
	TextSecondary string `yaml:"text_secondary"`
	Accent1       string `yaml:"accent1"`
	Accent2       string `yaml:"accent2"`
	Accent3       string `yaml:"accent3"`
}

// TemplateFonts holds the font overrides for a custom template.
type TemplateFonts struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Code  string `yaml:"code"`
}

// Validate validates the template configuration.
func (c *TemplateConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required,
			validation.NotIn(pptx.TemplateDefault, pptx.TemplateProfessional, pptx.TemplateModern, pptx.TemplateMinimal).
				Error("conflicts with a built-in template")),
	); err != nil {
		return err
	}
	hexFields := map[string]string{
		"colors.background":     c.Colors.Background,
		"colors.text_primary":   c.Colors.TextPrimary,
		"colors.text_secondary": c.Colors.TextSecondary,
		"colors.accent1":        c.Colors.Accent1,
		"colors.accent2":        c.Colors.Accent2,
		"colors.accent3":        c.Colors.Accent3,
	}
	for field, value := range hexFields {
		if value != "" && !hexColorPattern.MatchString(value) {
			return fmt.Errorf("%s: %q is not a 6-digit hex color", field, value)
		}
	}
	return nil
}

// Template materializes the custom template over the default one.
func (c *TemplateConfig) Template() pptx.Template {
	base := pptx.TemplateByName(pptx.TemplateDefault)
	tpl := base
	tpl.Name = c.Name
	tpl.Colors = pptx.ThemeColors{
		Background:    cmp.Or(c.Colors.Background, base.Colors.Background),
		TextPrimary:   cmp.Or(c.Colors.TextPrimary, base.Colors.TextPrimary),
		TextSecondary: cmp.Or(c.Colors.TextSecondary, base.Colors.TextSecondary),
		Accent1:       cmp.Or(c.Colors.Accent1, base.Colors.Accent1),
		Accent2:       cmp.Or(c.Colors.Accent2, base.Colors.Accent2),
		Accent3:       cmp.Or(c.Colors.Accent3, base.Colors.Accent3),
	}
	tpl.Fonts = pptx.FontScheme{
		TitleFont: cmp.Or(c.Fonts.Title, base.Fonts.TitleFont),
		BodyFont:  cmp.Or(c.Fonts.Body, base.Fonts.BodyFont),
		CodeFont:  cmp.Or(c.Fonts.Code, base.Fonts.CodeFont),
	}
	return tpl
}

// AuthConfig holds authentication configuration.
//
// Mode controls how authentication is enforced:
//   - "disabled" (default): no authentication required, suitable for local dev.
//   - "token": Bearer token authentication; Token must be non-empty.
type AuthConfig struct {
	Mode  string `yaml:"mode"`
	Token string `yaml:"token"`
}

// Validate validates the auth configuration.
func (c *AuthConfig) Validate() error {
	// Normalise empty mode to "disabled" for backward compatibility.
	if c.Mode == "" {
		c.Mode = AuthModeDisabled
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Mode, validation.Required, validation.In(AuthModeDisabled, AuthModeToken)),
	); err != nil {
		return err
	}
	if c.Mode == AuthModeToken && c.Token == "" {
		return fmt.Errorf("auth: mode is %q but token is empty", AuthModeToken)
	}
	return nil
}

// AuthEnabled returns true when authentication is active.
func (c *AuthConfig) AuthEnabled() bool {
	return c.Mode == AuthModeToken
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Convert: ConvertConfig{
			DefaultTemplate: pptx.TemplateDefault,
		},
		Auth: AuthConfig{
			Mode: AuthModeDisabled,
		},
	}
}
