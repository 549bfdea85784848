package config

import "path/filepath"

const (
	// MetaDirName is the metadata directory at the hub root.
	MetaDirName = ".wtree"

	// HooksFileName is the hook configuration file inside MetaDirName.
	HooksFileName = "hooks.toml"

	// StateFileName is the state file inside MetaDirName.
	StateFileName = "state"
)

// MetaDir returns <hubRoot>/.wtree.
func MetaDir(hubRoot string) string {
	return filepath.Join(hubRoot, MetaDirName)
}

// HooksPath returns <hubRoot>/.wtree/hooks.toml.
func HooksPath(hubRoot string) string {
	return filepath.Join(hubRoot, MetaDirName, HooksFileName)
}

// StatePath returns <hubRoot>/.wtree/state.
func StatePath(hubRoot string) string {
	return filepath.Join(hubRoot, MetaDirName, StateFileName)
}
