package config

// GenerateTemplate creates a commented starter configuration file for the
// init command. Commented-out entries show the defaults.
func GenerateTemplate() []byte {
	return []byte(`# gomathdoc configuration
# See: https://github.com/yaklabco/gomathdoc

# Math delimiter pairs to scan for. Omit for the standard TeX pairs:
# $$...$$ and \[...\] (block), \(...\) and $...$ (inline).
# delimiters:
#   - open: "$$"
#     close: "$$"
#     display: block
#   - open: "$"
#     close: "$"
#     display: inline

renderer:
  # Text spliced over expressions that fail to render.
  # Empty keeps the original source in place.
  error_indicator: ""

  # Container width in cells. 0 detects from the terminal.
  width: 0

scan:
  # File extensions considered for rendering.
  extensions: [".md", ".markdown", ".tex", ".txt"]

  # Scan inside Markdown code blocks and inline code.
  code_blocks: false

# Glob patterns for files to skip.
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

backups:
  # Keep a .gomathdoc.bak copy of each file before the first rewrite.
  enabled: true
  mode: sidecar
`)
}
