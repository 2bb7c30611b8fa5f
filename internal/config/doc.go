// Package config manages persistent application settings.
//
// Settings live in a YAML file in the OS-appropriate user configuration
// directory (e.g. ~/.config/sanad/config.yaml on Linux). The file stores the
// UI language, the suggestion model, and optional endpoint overrides. The
// OpenAI API key is deliberately excluded: it is resolved from the
// OPENAI_API_KEY environment variable at startup and never written to disk.
//
// A missing config file is not an error; Load returns defaults. The saved
// application record itself is handled by the storage package, not here.
package config
