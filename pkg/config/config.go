package config

import "os"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Server
	Port    string
	AppName string

	// Database (empty = in-memory mapping cache, no audit log)
	DatabaseURL string

	// Mercurial history
	HgBaseURL string
	HgRepo    string

	// Git history
	GitHubAPIURL string
	GitHubRepo   string // "owner/name"
	GitHubToken  string // optional, raises the rate limit

	// Commit mapper
	MapperURL     string
	MapperProject string

	// CI
	TreeherderURL     string
	TreeherderProject string
	JobGroupSymbol    string

	// Release calendar
	ScheduleURL string

	// Tracked localization file: canonical copy, packaged webext copy,
	// and the file id used inside the locale report.
	MainFilePath   string
	WebextFilePath string
	TrackedFileID  string

	// Locale report location in the source tree
	ReportPath string

	// Frontend
	FrontendURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Port:    envOrDefault("PORT", "3001"),
		AppName: envOrDefault("APP_NAME", "Trainhop Readiness"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		HgBaseURL: envOrDefault("HG_BASE_URL", "https://hg.mozilla.org"),
		HgRepo:    envOrDefault("HG_REPO", "mozilla-central"),

		GitHubAPIURL: envOrDefault("GITHUB_API_URL", "https://api.github.com"),
		GitHubRepo:   envOrDefault("GITHUB_REPO", "mozilla-firefox/firefox"),
		GitHubToken:  os.Getenv("GITHUB_TOKEN"),

		MapperURL:     envOrDefault("MAPPER_URL", "https://mapper.mozilla-releng.net"),
		MapperProject: envOrDefault("MAPPER_PROJECT", "gecko-dev"),

		TreeherderURL:     envOrDefault("TREEHERDER_URL", "https://treeherder.mozilla.org"),
		TreeherderProject: envOrDefault("TREEHERDER_PROJECT", "mozilla-central"),
		JobGroupSymbol:    envOrDefault("JOB_GROUP_SYMBOL", "trainhop"),

		ScheduleURL: envOrDefault("SCHEDULE_URL", "https://whattrainisitnow.com"),

		MainFilePath:   envOrDefault("MAIN_FILE_PATH", "browser/locales/en-US/browser/newtab/newtab.ftl"),
		WebextFilePath: envOrDefault("WEBEXT_FILE_PATH", "browser/extensions/newtab/webext-glue/locales/en-US/browser/newtab/newtab.ftl"),
		TrackedFileID:  envOrDefault("TRACKED_FILE_ID", "browser/newtab/newtab.ftl"),

		ReportPath: envOrDefault("REPORT_PATH", "browser/extensions/newtab/webext-glue/locales/locales-report.json"),

		FrontendURL: envOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
