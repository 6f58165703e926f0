package version

import "fmt"

// Overridden at link time with -ldflags "-X tinyhttp/internal/version.Version=...".
var (
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
)

const Product = "tinyhttp"

// Info is a snapshot of the build variables.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
}

func Current() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	}
}

func (i Info) String() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Product, i.Version, i.Commit, i.BuildDate)
}

// Token is the "product/version" form used in Server headers and logs.
// A build without a version yields the bare product name.
func (i Info) Token() string {
	if i.Version == "" {
		return Product
	}
	return Product + "/" + i.Version
}
