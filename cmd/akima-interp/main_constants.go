package main

// CLI defaults and demo formatting.
const (
	defaultGridSize = 21
	minGridSize     = 2
	csvColumns      = 2

	demoGridSize  = 33
	demoBarScale  = 30
	demoBarOffset = 1
)
