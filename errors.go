package forgeutils

import "fmt"

type InvalidHexColorError struct {
	Value string
}

func (e InvalidHexColorError) Error() string {
	return fmt.Sprintf("invalid hex color %q: want 6 hex digits with optional leading '#'", e.Value)
}

type NegativePathDepthError struct {
	Levels int
}

func (e NegativePathDepthError) Error() string {
	return fmt.Sprintf("negative path depth: %d", e.Levels)
}

type InvalidCountError struct {
	What  string
	Count int
}

func (e InvalidCountError) Error() string {
	return fmt.Sprintf("%s count must be positive, got %d", e.What, e.Count)
}

type CacheCapacityError struct {
	Capacity int
}

func (e CacheCapacityError) Error() string {
	return fmt.Sprintf("cache at maximum capacity (%d)", e.Capacity)
}

type DuplicateTemplateError struct {
	Name string
}

func (e DuplicateTemplateError) Error() string {
	return fmt.Sprintf("template already registered: %s", e.Name)
}
