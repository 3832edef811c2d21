// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as
// the file format.
//
// Configuration is loaded from ~/.config/fc-audit/config.toml (or the XDG
// equivalent on Linux, ~/Library/Application Support/fc-audit/config.toml on
// macOS, %APPDATA%\fc-audit\config.toml on Windows), with FC_AUDIT_* env
// variables layered on top. Flags always win over configuration values.
package config
