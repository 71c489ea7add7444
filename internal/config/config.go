package config

import "time"

// this holds the resolved configuration values from CLI, config file and
// environment
var (
	Site       string        // registered scraper name (f1.practice, f1.race, f1.race-pits)
	Format     string        // output format
	Output     string        // output file, stdout when empty
	Timeout    time.Duration // per-page fetch timeout
	ProxyURL   string        // proxy for both fetch engines
	Render     bool          // fetch through headless Chromium
	ShowUI     bool          // show the browser window when rendering
	Selector   string        // CSS selector of the data table
	Reference  string        // YAML file overriding team codes and flags
	Copy       bool          // copy the rendered output to the clipboard
	LogLevel   string        // zap log level
	LogFormat  string        // console vs json
	ConfigFile string        // path to the config file
)
