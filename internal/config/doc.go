// Package config loads the embedder-facing options.
//
// Configuration is a TOML file:
//
//	[layout]
//	cell_width = 1.0
//	cell_height = 1.0
//	region_gap = 1.0
//
//	theme = "theme.json"
//
// A missing configuration file is not an error and yields the defaults;
// unusable values (non-positive cell metrics, negative gap) are replaced
// with defaults after parsing. The theme is a separate JSON file of hex
// colors; unknown or invalid keys keep their default color.
//
// Watcher watches the configuration paths with fsnotify and invokes a
// callback after a short debounce, so editors saving via rename-and-replace
// trigger a single reload.
package config
