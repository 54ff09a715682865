// Package app wires the launcher together: logger construction, loading
// user-defined configurations, registry population, and dispatching the
// list / print / launch operations.
package app
