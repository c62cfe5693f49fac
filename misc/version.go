// Package misc keeps program identification set at build time.
package misc

// Set by linker (-ldflags "-X tabletpl/misc.version=...").
var (
	appName = "tabletpl"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
