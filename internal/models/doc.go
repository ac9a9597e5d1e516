// Package models defines the YAML-backed data types shared by the CLI, the TUI and the engine.
package models
