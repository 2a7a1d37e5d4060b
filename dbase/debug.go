package dbase

import (
	"io"
	"log"
	"os"
)

var debug = false
var debugLogger = log.New(os.Stdout, "[dbase] [DEBUG] ", log.LstdFlags)
var errorLogger = log.New(os.Stdout, "[dbase] [ERROR] ", log.LstdFlags)

// SetDebug switches the debug output on or off, it is off by default.
func SetDebug(enabled bool) {
	debug = enabled
}

// SetOutput sets the destination of the debug output. A nil writer keeps the current one.
func SetOutput(out io.Writer) {
	if out == nil {
		return
	}
	debugLogger.SetOutput(out)
	errorLogger.SetOutput(out)
}

func debugf(format string, v ...interface{}) {
	if debug {
		debugLogger.Printf(format, v...)
	}
}

func errorf(format string, v ...interface{}) {
	if debug {
		errorLogger.Printf(format, v...)
	}
}
