package hanoi

// Version is the release of the library and CLI. Overridden at build time with
// -ldflags "-X github.com/aretw0/hanoi.Version=...".
var Version = "v0.3.0"
