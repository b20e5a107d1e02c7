package types

// Version is the release version of hubsync. Overwritten via ldflags on release builds.
var Version = "v0.1.0"
