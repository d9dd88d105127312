package config

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to sitegen! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title prompt: %w", err)
	}
	cfg.Title = title

	contentPrompt := promptui.Prompt{
		Label:   "Content directory",
		Default: cfg.ContentDir,
	}
	contentDir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir prompt: %w", err)
	}
	cfg.ContentDir = contentDir

	urlPrompt := promptui.Prompt{
		Label:   "Base URL (optional)",
		Default: "",
	}
	baseURL, err := urlPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base URL prompt: %w", err)
	}
	cfg.BaseURL = baseURL

	accentPrompt := promptui.Select{
		Label: "Accent color",
		Items: AccentNames,
	}
	_, accent, err := accentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("accent selection: %w", err)
	}
	cfg.Accent = AccentColor(accent)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}
