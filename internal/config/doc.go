// Package config defines the format-agnostic workspace model and the Loader
// interface that format-specific adapters (HCL, YAML) implement. Everything
// downstream of loading operates purely on this model and never sees the
// source format.
package config
