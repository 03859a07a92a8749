package logging

import (
	"log"
	"os"
)

// Debug controls whether debug logs are printed.
var Debug bool

// Debugf logs a formatted debug message when Debug is enabled.
func Debugf(format string, v ...any) {
	if Debug {
		log.Printf("DEBUG: "+format, v...)
	}
}

// InitFile redirects the standard logger to a file. The terminal client
// uses this so log output does not fight the TUI for the screen.
func InitFile(dest, prefix string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
	return nil
}
