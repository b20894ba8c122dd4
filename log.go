package ycsb

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
}

// SetLogLevel configures the package-wide logrus level from one of
// "verbose", "debug", "info", "warn", "error", "quiet".
func SetLogLevel(name string) error {
	switch name {
	case "verbose":
		log.SetLevel(log.TraceLevel)
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	case "quiet":
		log.SetLevel(log.PanicLevel)
	default:
		return NewErrorf("unknown log level: %s", name)
	}
	return nil
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Verbosef(format string, args ...interface{}) {
	log.Tracef(format, args...)
}

// PromptPrintf writes directly to stdout, bypassing logrus, for interactive
// shell prompts that should never be prefixed with a log level or timestamp.
func PromptPrintf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// Printf is PromptPrintf with a trailing newline, used by the shell to print
// command results.
func Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	fmt.Println("")
}

func EPrintf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	fmt.Fprintln(os.Stderr)
}

// EPrintln writes its arguments to stderr, one line, with no log-level
// decoration. Used for warnings emitted outside the normal logging path
// (e.g. from workload setup, before logrus's level filter is relevant).
func EPrintln(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
}
