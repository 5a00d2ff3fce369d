// Package util provides logging helpers and file system locations used by
// the screen and the CLI.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogInfo logs an informational line with context.
func LogInfo(context, format string, args ...any) {
	log.Printf(context+": "+format, args...)
}
