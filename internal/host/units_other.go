//go:build !windows

package host

// GTK and Cocoa position windows in logical units
const positionInPhysicalUnits = false
