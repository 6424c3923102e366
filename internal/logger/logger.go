package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
)

// Log levels
const (
	LevelError = iota
	LevelWarning
	LevelInfo
	LevelDebug
)

var (
	// Different log levels with colors
	Info    *log.Logger
	Debug   *log.Logger
	Warning *log.Logger
	Error   *log.Logger

	// Control overall logging level
	LogLevel = LevelInfo

	// Control color output
	useColors = true

	// Current output handles, so color toggles keep the active targets
	outHandle io.Writer = os.Stdout
	errHandle io.Writer = os.Stderr
)

// Initialize sets up the loggers. Info, debug, and warning messages go to
// out; errors go to errOut. A nil writer keeps the current target.
func Initialize(out, errOut io.Writer) {
	if out != nil {
		outHandle = out
	}
	if errOut != nil {
		errHandle = errOut
	}

	flags := log.Ldate | log.Ltime | log.Lshortfile
	if useColors {
		Info = log.New(outHandle, colorBlue+"INFO: "+colorReset, flags)
		Debug = log.New(outHandle, colorPurple+"DEBUG: "+colorReset, flags)
		Warning = log.New(outHandle, colorYellow+"WARNING: "+colorReset, flags)
		Error = log.New(errHandle, colorRed+"ERROR: "+colorReset, flags)
	} else {
		Info = log.New(outHandle, "INFO: ", flags)
		Debug = log.New(outHandle, "DEBUG: ", flags)
		Warning = log.New(outHandle, "WARNING: ", flags)
		Error = log.New(errHandle, "ERROR: ", flags)
	}
}

// EnableColors enables colored output
func EnableColors() {
	useColors = true
	// Re-initialize to apply the change
	Initialize(nil, nil)
}

// DisableColors disables colored output
func DisableColors() {
	useColors = false
	// Re-initialize to apply the change
	Initialize(nil, nil)
}

// SetLevel sets the logging level
func SetLevel(level int) {
	if level >= LevelError && level <= LevelDebug {
		LogLevel = level
	}
}

// Helper functions with level checking
func Infof(format string, v ...interface{}) {
	if LogLevel >= LevelInfo {
		Info.Output(2, fmt.Sprintf(format, v...))
	}
}

func Debugf(format string, v ...interface{}) {
	if LogLevel >= LevelDebug {
		Debug.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warningf(format string, v ...interface{}) {
	if LogLevel >= LevelWarning {
		Warning.Output(2, fmt.Sprintf(format, v...))
	}
}

func Errorf(format string, v ...interface{}) {
	if LogLevel >= LevelError {
		Error.Output(2, fmt.Sprintf(format, v...))
	}
}

// Init is called automatically to initialize the logger with defaults
func init() {
	Initialize(nil, nil)
}
