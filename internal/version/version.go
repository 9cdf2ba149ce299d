// Package version holds the build version string.
package version

// Version is the current studyforge version.
const Version = "0.1.0"
