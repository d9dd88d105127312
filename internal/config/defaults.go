package config

// Accent color presets offered by the init wizard.
var accentPresets = map[string]string{
	"blue":   "#228be6",
	"teal":   "#0ca678",
	"violet": "#7048e8",
	"rose":   "#e64980",
}

// AccentNames lists the preset names in wizard display order.
var AccentNames = []string{"blue", "teal", "violet", "rose"}

// AccentColor resolves a preset name to its color, falling back to the
// value itself so configs can carry a raw CSS color.
func AccentColor(name string) string {
	if c, ok := accentPresets[name]; ok {
		return c
	}
	return name
}

// DefaultConfig returns the configuration used when no .sitegen.yml
// exists yet.
func DefaultConfig() *Config {
	return &Config{
		Title:      "Documentation",
		ContentDir: "content",
		OutputDir:  "public",
		Accent:     accentPresets["blue"],
		Port:       8080,
	}
}
