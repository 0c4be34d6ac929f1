//go:build android || ios

package placement

// MoveSupported is false on mobile, where the shell owns window placement
const MoveSupported = false
