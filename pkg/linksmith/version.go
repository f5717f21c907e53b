// Package linksmith holds module-wide metadata for the linksmith toolkit.
package linksmith

// Version is the linksmith release version.
const Version = "0.1.0"
