package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/rs/zerolog/log"
	str2duration "github.com/xhit/go-str2duration/v2"
)

const (
	defaultAPIBase = "https://api.github.com"
	defaultTimeout = 10 * time.Second
)

// Release represents a GitHub release
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
	HTMLURL    string `json:"html_url"`
}

// UpdateInfo contains information about an available update
type UpdateInfo struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
	ReleaseNotes   string
	IsPreRelease   bool
}

// Updater checks GitHub releases for newer versions
type Updater struct {
	owner         string
	repo          string
	apiBase       string
	cacheDir      string
	checkInterval time.Duration
	httpClient    *http.Client
}

// New creates an updater
// checkInterval is a duration string like "24h", "1d", "2h30m"
func New(owner, repo, cacheDir, checkInterval string) *Updater {
	// Parse check interval, default to 24h if invalid
	interval, err := str2duration.ParseDuration(checkInterval)
	if err != nil {
		log.Debug().Str("interval", checkInterval).Msg("Invalid check interval, using default 24h")
		interval = 24 * time.Hour
	}

	return &Updater{
		owner:         owner,
		repo:          repo,
		apiBase:       defaultAPIBase,
		cacheDir:      cacheDir,
		checkInterval: interval,
		httpClient:    &http.Client{Timeout: defaultTimeout},
	}
}

// CheckForUpdate checks if a new version is available
// channel is "stable" (or empty) for releases only, "beta" to include pre-releases
// Returns UpdateInfo if an update is available, nil if up-to-date, error on failure
func (u *Updater) CheckForUpdate(currentVersion, channel string) (*UpdateInfo, error) {
	// Check cache first to avoid hitting the GitHub API frequently
	if !u.shouldCheckForUpdate() {
		log.Debug().Msg("Skipping update check (cache not expired)")
		return nil, nil
	}

	// Dev builds have no release to compare against
	if currentVersion == "" || currentVersion == "dev" {
		log.Debug().Msg("Skipping update check for dev build")
		return nil, nil
	}

	current, err := parseVersion(currentVersion)
	if err != nil {
		log.Debug().Str("version", currentVersion).Msg("Failed to parse current version")
		return nil, nil
	}

	var release *Release
	if channel == "beta" {
		release, err = u.latestPreRelease()
	} else {
		release, err = u.latestRelease()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest release: %w", err)
	}

	u.updateCacheTimestamp()

	latest, err := parseVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latest version %s: %w", release.TagName, err)
	}

	if !latest.GreaterThan(current) {
		log.Debug().
			Str("current", current.String()).
			Str("latest", latest.String()).
			Msg("No update available")
		return nil, nil
	}

	return &UpdateInfo{
		CurrentVersion: current.String(),
		LatestVersion:  latest.String(),
		ReleaseURL:     release.HTMLURL,
		ReleaseNotes:   release.Body,
		IsPreRelease:   release.Prerelease,
	}, nil
}

// latestRelease fetches the latest stable release
func (u *Updater) latestRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", u.apiBase, u.owner, u.repo)

	var release Release
	if err := u.getJSON(url, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// latestPreRelease fetches the newest non-draft release, pre-releases included
func (u *Updater) latestPreRelease() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases", u.apiBase, u.owner, u.repo)

	var releases []Release
	if err := u.getJSON(url, &releases); err != nil {
		return nil, err
	}

	for _, release := range releases {
		if release.Draft {
			continue
		}
		return &release, nil
	}
	return nil, fmt.Errorf("no releases found")
}

func (u *Updater) getJSON(url string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseVersion parses a release tag as semver, tolerating the "v" prefix
// wekker's tags carry. Pre-release ordering follows go-version, so
// "1.0.0-beta.2" sorts below "1.0.0".
func parseVersion(tag string) (*version.Version, error) {
	parsed, err := version.NewVersion(strings.TrimPrefix(tag, "v"))
	if err != nil {
		return nil, fmt.Errorf("invalid version format: %s", tag)
	}
	return parsed, nil
}

// shouldCheckForUpdate checks if we should check for updates based on cache
func (u *Updater) shouldCheckForUpdate() bool {
	cacheFile := filepath.Join(u.cacheDir, "update_check_timestamp")

	info, err := os.Stat(cacheFile)
	if err != nil {
		return true // Cache doesn't exist, should check
	}

	return time.Since(info.ModTime()) > u.checkInterval
}

// updateCacheTimestamp updates the cache timestamp file
func (u *Updater) updateCacheTimestamp() {
	cacheFile := filepath.Join(u.cacheDir, "update_check_timestamp")

	// Ensure cache directory exists
	os.MkdirAll(u.cacheDir, 0755)

	// Recreate the file so its mtime reflects this check
	os.Remove(cacheFile)
	f, err := os.OpenFile(cacheFile, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to update cache timestamp")
		return
	}
	f.Close()
}

// FormatAnnouncement renders a short upgrade notice for the terminal
func FormatAnnouncement(info *UpdateInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New version available: %s (current: %s)\n", info.LatestVersion, info.CurrentVersion)
	if info.IsPreRelease {
		b.WriteString("This is a pre-release.\n")
	}
	fmt.Fprintf(&b, "Release: %s\n", info.ReleaseURL)
	return b.String()
}
