// Package catalog turns raw retailer listings into normalized laptop
// candidates: parsed hardware attributes, detected brand and operating
// system, and parse warnings for anything suspicious.
package catalog

import "fmt"

// OSHint is the operating system detected for a listing. Detection is
// best effort; FreeDOS doubles as the "no OS found" default because
// that is what local retailers ship when nothing is stated.
type OSHint int

const (
	OSFreeDOS OSHint = iota
	OSWindows
	OSMacOS
	OSLinux
)

var osNames = map[OSHint]string{
	OSFreeDOS: "freedos",
	OSWindows: "windows",
	OSMacOS:   "macos",
	OSLinux:   "linux",
}

func (o OSHint) String() string {
	if name, ok := osNames[o]; ok {
		return name
	}
	return "freedos"
}

// ParseOSHint converts a stored OS name back into an OSHint.
func ParseOSHint(s string) (OSHint, error) {
	for hint, name := range osNames {
		if name == s {
			return hint, nil
		}
	}
	return OSFreeDOS, fmt.Errorf("unknown os hint %q", s)
}

// RawListing is one row as it came from a retailer export, before any
// cleaning. All fields are free text; Source names the retailer feed.
type RawListing struct {
	Name       string
	Price      string
	RAM        string
	Storage    string
	ScreenSize string
	OS         string
	URL        string
	Source     string
}

// Candidate is a cleaned listing. Attributes that could not be parsed
// are nil, never zero or a sentinel: downstream code must decide per
// use whether a missing value excludes the candidate or falls back to
// a neutral default.
type Candidate struct {
	ID    string
	Name  string
	Brand string

	Price     *int
	RAMGB     *int
	StorageGB *int
	ScreenIn  *float64

	// CPU is the normalized CPU label, nil when none was recognized.
	// GPU always carries a label; unrecognized hardware gets one of the
	// generic buckets ("Integrated (generic)", "GPU (Unlabeled)", ...).
	CPU *string
	GPU string

	CPUScore float64
	GPUScore float64

	OS     OSHint
	Source string
	URL    string

	// Warnings records suspicious values seen while parsing, such as a
	// RAM figure over 128 GB. They do not block the candidate.
	Warnings []string
}

// PriceValue returns the price or 0 when unknown.
func (c *Candidate) PriceValue() int {
	if c.Price == nil {
		return 0
	}
	return *c.Price
}

// HasHardware reports whether the candidate has enough parsed
// attributes to be scored at all.
func (c *Candidate) HasHardware() bool {
	return c.RAMGB != nil || c.StorageGB != nil || c.CPU != nil
}
