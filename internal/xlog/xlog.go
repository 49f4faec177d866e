// Package xlog is the core's ambient logger, mirroring the teacher's
// pkg/logger: a single package-level zerolog.Logger writing to stderr.
package xlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is shared by every package that builds something expensive enough to
// be worth tracing (curve and length-table construction). Pure evaluation
// and root-finding never log: they are cheap, called often, and any failure
// there is already surfaced as a classified *splinekit.Error.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
