// Package logging builds the Zap logger shared by the CLI, index
// builder, and query engine, replacing the teacher's bare log.Print/
// log.Fatal calls with leveled, field-carrying logs (SPEC_FULL.md §6).
package logging

import "go.uber.org/zap"

// New returns a production Zap logger, or a development logger (human-
// readable, caller-annotated) when debug is true.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
