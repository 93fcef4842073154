package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# ganttfmt configuration file
# Load it with: formatter -config ganttfmt.toml chart.mmd
# CLI flags override values set here.

# How column widths are measured:
#   runes   - one column per Unicode character (default)
#   display - terminal cells, wide CJK characters count as two
width_mode = "runes"

# Extra configuration keywords to indent like dateFormat or axisFormat.
# They are added to the built-in list.
# keywords = ["customOption"]

# Log level: debug, info, warn, error
log_level = "info"

# Log format: text, json, logfmt
log_format = "text"
`
}
