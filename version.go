package nepalikit

// Version is the toolkit release version. It is overridden at build time via
// -ldflags "-X github.com/nepalikit/nepalikit.Version=<tag>"; the default marks a
// source build.
var Version = "0.0.0-dev"
