package config

// Config is the top-level sitegen configuration, corresponding to
// .sitegen.yml.
type Config struct {
	Title      string   `yaml:"title" koanf:"title"`
	BaseURL    string   `yaml:"base_url" koanf:"base_url"`
	ContentDir string   `yaml:"content_dir" koanf:"content_dir"`
	OutputDir  string   `yaml:"output_dir" koanf:"output_dir"`
	Accent     string   `yaml:"accent" koanf:"accent"`
	Menu       []string `yaml:"menu" koanf:"menu"`
	Include    []string `yaml:"include" koanf:"include"`
	Exclude    []string `yaml:"exclude" koanf:"exclude"`
	Port       int      `yaml:"port" koanf:"port"`
	Drafts     bool     `yaml:"drafts" koanf:"drafts"`
}
