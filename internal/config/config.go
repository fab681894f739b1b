// Package config loads the gwt configuration.
//
// Settings come from three layers, later wins: built-in defaults, the TOML
// file at ~/.config/gwt/config.toml, and GWT_* environment variables. The
// resulting Config is built once at startup and passed down explicitly;
// nothing below the root command reads the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPostCreateMessage is printed after creating a worktree when no hook
// or per-repo message is configured.
const DefaultPostCreateMessage = "Run your setup commands here"

// DefaultBaseBranch is the starting point for newly created branches.
// Repositories whose integration branch is "main" set base_branch instead.
const DefaultBaseBranch = "master"

// Config holds the gwt configuration.
type Config struct {
	// ReposRoot is the parent directory of all main repositories.
	ReposRoot string `toml:"repos_root"`
	// WorktreeDir is the parent of all per-repo worktree storage directories.
	// Worktrees live at <WorktreeDir>/<repo>/<branch>.
	WorktreeDir string `toml:"worktree_dir"`
	// DefaultRepo is used when --repo is not given.
	DefaultRepo string `toml:"default_repo"`
	// BaseBranch is the base for branches that exist neither locally nor on
	// the remote.
	BaseBranch string `toml:"base_branch"`
	// PostCreateMessage is the fallback post-create notification text.
	PostCreateMessage string `toml:"post_create_message"`
	// Messages maps repository names to per-repo post-create messages.
	// An absent key falls through to PostCreateMessage; this is why it is a
	// map lookup and not a defaulted string.
	Messages map[string]string `toml:"messages"`
	// Hook, when set, is a shell command run after worktree creation instead
	// of printing any message.
	Hook string `toml:"hook"`
}

// Default returns the default configuration.
func Default() Config {
	home, _ := os.UserHomeDir()
	root := filepath.Join(home, "code")
	return Config{
		ReposRoot:         root,
		WorktreeDir:       filepath.Join(root, "worktrees"),
		DefaultRepo:       "my-repo",
		BaseBranch:        DefaultBaseBranch,
		PostCreateMessage: DefaultPostCreateMessage,
		Messages:          map[string]string{},
	}
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gwt", "config.toml"), nil
}

// Load reads the configuration from ~/.config/gwt/config.toml and the
// environment. A missing file is not an error; an unreadable or invalid one
// is reported and the defaults are returned so the tool stays usable.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		cfg := Default()
		applyEnv(&cfg, os.Getenv, true)
		return cfg, nil
	}
	return LoadFrom(path, os.Getenv)
}

// LoadFrom reads the configuration from an explicit file path and an
// environment lookup function. Split out for tests.
func LoadFrom(path string, getenv func(string) string) (Config, error) {
	cfg := Default()
	// Tracks whether WorktreeDir is still derived from the root rather than
	// configured outright; only a derived value follows a later root change.
	wtDerived := true

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No file, defaults + env only.
	case err != nil:
		applyEnv(&cfg, getenv, true)
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			fresh := Default()
			applyEnv(&fresh, getenv, true)
			return fresh, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		// A file that sets repos_root but not worktree_dir keeps the
		// worktrees under the new root.
		wtDerived = cfg.WorktreeDir == Default().WorktreeDir
		if wtDerived && cfg.ReposRoot != Default().ReposRoot {
			cfg.WorktreeDir = filepath.Join(cfg.ReposRoot, "worktrees")
		}
	}

	applyEnv(&cfg, getenv, wtDerived)

	if cfg.Messages == nil {
		cfg.Messages = map[string]string{}
	}

	if err := cfg.expandPaths(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overlays GWT_* environment variables onto cfg. wtDerived reports
// whether cfg.WorktreeDir was derived from the root; a worktree dir the file
// configured explicitly is kept even when the env changes the root.
func applyEnv(cfg *Config, getenv func(string) string, wtDerived bool) {
	rootSet := false
	if v := getenv("GWT_REPOS_ROOT"); v != "" {
		cfg.ReposRoot = v
		rootSet = true
	}
	if v := getenv("GWT_WORKTREE_DIR"); v != "" {
		cfg.WorktreeDir = v
	} else if rootSet && wtDerived {
		cfg.WorktreeDir = filepath.Join(cfg.ReposRoot, "worktrees")
	}
	if v := getenv("GWT_DEFAULT_REPO"); v != "" {
		cfg.DefaultRepo = v
	}
	if v := getenv("GWT_BASE_BRANCH"); v != "" {
		cfg.BaseBranch = v
	}
	if v := getenv("GWT_POST_CREATE_MESSAGE"); v != "" {
		cfg.PostCreateMessage = v
	}
	if v := getenv("GWT_HOOK"); v != "" {
		cfg.Hook = v
	}
}

// Validate checks that the configured paths are usable.
func (c *Config) Validate() error {
	if err := validatePath(c.ReposRoot, "repos_root"); err != nil {
		return err
	}
	if err := validatePath(c.WorktreeDir, "worktree_dir"); err != nil {
		return err
	}
	if c.DefaultRepo == "" {
		return fmt.Errorf("default_repo must not be empty")
	}
	if c.BaseBranch == "" {
		return fmt.Errorf("base_branch must not be empty")
	}
	return nil
}

// validatePath checks that the path is absolute or starts with ~.
func validatePath(path, fieldName string) error {
	if path == "" {
		return fmt.Errorf("%s must not be empty", fieldName)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPaths expands ~ in all path fields.
func (c *Config) expandPaths() error {
	var err error
	if c.ReposRoot, err = expandPath(c.ReposRoot); err != nil {
		return err
	}
	if c.WorktreeDir, err = expandPath(c.WorktreeDir); err != nil {
		return err
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}
