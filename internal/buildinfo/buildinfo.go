// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build. It is reported as
// the error-tracking release and on /readyz.
// Inject via: -X github.com/garyellow/winston-hrbot-go/internal/buildinfo.Version=...
var Version = "dev"

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/garyellow/winston-hrbot-go/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/garyellow/winston-hrbot-go/internal/buildinfo.BuildDate=...
var BuildDate = ""
