// Package version records the tool's release version.
package version

// Version is reported by --version and sent in the User-Agent header.
const Version = "0.1.0"
