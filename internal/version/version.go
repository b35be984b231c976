package version

// Version is stamped at build time via
// -ldflags "-X github.com/filmlane/FilmLane/internal/version.Version=...".
var Version = "dev"
