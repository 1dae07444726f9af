// Package manifest handles the dependency manifest of generated tools. It
// parses --deps entries into name/constraint pairs, validates constraint
// versions, and merges the skeleton's base dependencies with user extras
// for requirements.txt generation.
package manifest
