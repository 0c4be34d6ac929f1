//go:build !android && !ios

package placement

// MoveSupported reports whether the host may move the window on this platform
const MoveSupported = true
