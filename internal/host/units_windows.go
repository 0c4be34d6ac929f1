//go:build windows

package host

// winc positions windows in physical pixels
const positionInPhysicalUnits = true
