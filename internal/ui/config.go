package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/pixsearch/internal/config"
	"github.com/javiermolinar/pixsearch/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  pixsearch config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)
	editConfig(reader, cfg)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

// editConfig prompts for every setting, keeping the current value on empty input.
func editConfig(reader *bufio.Reader, cfg *config.Config) {
	cfg.API.Key = promptValue(reader, "Pixabay API key", cfg.API.Key)
	cfg.API.BaseURL = promptValue(reader, "API base URL", cfg.API.BaseURL)
	cfg.API.PerPage = promptInt(reader, "Images per page (3-200)", cfg.API.PerPage)
	cfg.API.ImageType = promptValue(reader, "Image type (all, photo, illustration, vector)", cfg.API.ImageType)
	cfg.API.Orientation = promptValue(reader, "Orientation (all, horizontal, vertical)", cfg.API.Orientation)
	cfg.API.SafeSearch = promptBool(reader, "Safe search", cfg.API.SafeSearch)
	cfg.API.Timeout = promptValue(reader, "Request timeout", cfg.API.Timeout)
	cfg.Search.Dedupe = promptBool(reader, "Hide duplicate images across pages", cfg.Search.Dedupe)
	cfg.UI.Theme = promptTheme(reader, cfg.UI.Theme)
	cfg.UI.ToastMS = promptInt(reader, "Toast duration (ms)", cfg.UI.ToastMS)
	cfg.Log.DebugPath = promptValue(reader, "Debug log path", cfg.Log.DebugPath)
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[api]")
	fmt.Printf("  key         = %s\n", maskKey(cfg.API.Key))
	fmt.Printf("  base_url    = %s\n", cfg.API.BaseURL)
	fmt.Printf("  per_page    = %d\n", cfg.API.PerPage)
	fmt.Printf("  image_type  = %s\n", cfg.API.ImageType)
	fmt.Printf("  orientation = %s\n", cfg.API.Orientation)
	fmt.Printf("  safesearch  = %t\n", cfg.API.SafeSearch)
	fmt.Printf("  timeout     = %s\n", cfg.API.Timeout)
	fmt.Println("\n[search]")
	fmt.Printf("  dedupe      = %t\n", cfg.Search.Dedupe)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme       = %s\n", cfg.UI.Theme)
	fmt.Printf("  toast_ms    = %d\n", cfg.UI.ToastMS)
	fmt.Println("\n[log]")
	fmt.Printf("  debug_path  = %s\n", cfg.Log.DebugPath)
}

// maskKey hides all but the last four characters of an API key.
func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		value := promptValue(reader, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Printf("  Invalid number %q\n", value)
	}
}

func promptBool(reader *bufio.Reader, label string, current bool) bool {
	for {
		value := strings.ToLower(promptValue(reader, label+" (y/n)", boolLabel(current)))
		switch value {
		case "y", "yes", "true":
			return true
		case "n", "no", "false":
			return false
		}
		fmt.Printf("  Invalid answer %q\n", value)
	}
}

func boolLabel(b bool) string {
	if b {
		return "y"
	}
	return "n"
}

func promptTheme(reader *bufio.Reader, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Printf("  Invalid theme %q. Available: %s\n", value, options)
	}
}
