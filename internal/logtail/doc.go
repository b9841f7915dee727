// Package logtail reads the tail of shutter's own log file for the
// diagnostics view.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// O(maxLines) however large the file grows. Parse and Format turn zerolog
// JSON lines into compact "15:04:05 ERR [component] message k=v" text;
// anything that isn't JSON passes through unchanged.
package logtail
