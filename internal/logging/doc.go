// Package logging provides the pgsplit.Logger implementations used by the
// CLI: a stderr console logger with verbose gating, and a null logger for
// tests. Split output itself never goes through a logger; these carry only
// progress and diagnostics.
package logging
