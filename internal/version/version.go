package version

var (
	// Set at build time with -ldflags "-X github.com/redjax/weathercli/internal/version.Version=..."
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Change this for new packages
	RepoUser = "redjax"
	RepoName = "weathercli"
	RepoUrl  = "https://github.com/redjax/weathercli"
	Package  = "weathercli"
)

type PackageInfo struct {
	PackageName        string
	RepoUrl            string
	RepoUser           string
	RepoName           string
	PackageVersion     string
	PackageCommit      string
	PackageReleaseDate string
}

// GetPackageInfo returns a struct with information about the current package
func GetPackageInfo() PackageInfo {
	return PackageInfo{
		PackageName:        Package,
		RepoUrl:            RepoUrl,
		RepoUser:           RepoUser,
		RepoName:           RepoName,
		PackageVersion:     Version,
		PackageCommit:      Commit,
		PackageReleaseDate: Date,
	}
}

// String renders the one-line version summary.
func (p PackageInfo) String() string {
	return "package: " + p.PackageName + " version:" + p.PackageVersion + " commit:" + p.PackageCommit + " date:" + p.PackageReleaseDate
}
