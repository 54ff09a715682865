// Package registry holds every launch configuration known to the
// application: the built-in presets plus any user-defined configurations
// loaded from disk. Validation happens at registration time, so a
// configuration that reaches launch is already well-formed.
package registry
