// Package version holds build metadata injected at link time.
package version

// Version is set with -ldflags "-X github.com/ndewijer/Household-Wealth-Dashboard/internal/version.Version=v1.2.3".
var Version = "dev"
