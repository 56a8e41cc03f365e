// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the single configuration pass the planner
// performs, decoupled from any specific entrypoint like a CLI.
package app
