// Package timeutil provides time-related utilities for timezone handling and testability.
package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores cached timezone locations. time.LoadLocation reads
// the zone database from disk, so repeated lookups during combination
// validation would be needlessly expensive without it.
var locationCache sync.Map

// UTC is the Coordinated Universal Time zone name, used as the fallback
// when an airport carries no timezone.
const UTC = "UTC"

// GetLocation returns a cached timezone location.
// It caches the result for subsequent calls with the same name.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics on error.
// Use this for known-good timezone names (e.g., constants).
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// ParseInTimezone parses a time string in the specified timezone.
func ParseInTimezone(layout, value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, value, loc)
}

// FormatDate formats a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatDateTime formats a time as YYYY-MM-DD HH:MM:SS.
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

// ClearLocationCache clears the cached timezone locations.
// This is primarily useful for testing.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
