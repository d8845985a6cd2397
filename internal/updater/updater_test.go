package updater

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testUpdater(t *testing.T, handler http.Handler) *Updater {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u := New("rrooggiieerr", "wekker", t.TempDir(), "24h")
	u.apiBase = server.URL
	return u
}

func releaseHandler(t *testing.T, release Release) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/rrooggiieerr/wekker/releases/latest" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(release)
	})
}

func TestCheckForUpdateAvailable(t *testing.T) {
	u := testUpdater(t, releaseHandler(t, Release{
		TagName: "v1.5.0",
		Body:    "Bug fixes",
		HTMLURL: "https://github.com/rrooggiieerr/wekker/releases/tag/v1.5.0",
	}))

	info, err := u.CheckForUpdate("1.0.0", "stable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected update info")
	}
	if info.LatestVersion != "1.5.0" {
		t.Errorf("expected 1.5.0, got %s", info.LatestVersion)
	}
	if info.CurrentVersion != "1.0.0" {
		t.Errorf("expected 1.0.0, got %s", info.CurrentVersion)
	}
	if info.ReleaseURL == "" {
		t.Error("expected release URL")
	}
}

func TestCheckForUpdateUpToDate(t *testing.T) {
	u := testUpdater(t, releaseHandler(t, Release{TagName: "v1.0.0"}))

	info, err := u.CheckForUpdate("1.0.0", "stable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("expected no update, got %+v", info)
	}
}

func TestCheckForUpdateDevBuild(t *testing.T) {
	called := false
	u := testUpdater(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	info, err := u.CheckForUpdate("dev", "stable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Error("dev builds should never report an update")
	}
	if called {
		t.Error("dev builds should not hit the API")
	}
}

func TestCheckForUpdateBetaChannel(t *testing.T) {
	u := testUpdater(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/rrooggiieerr/wekker/releases" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]Release{
			{TagName: "v2.0.0-rc.1", Draft: true},
			{TagName: "v2.0.0-beta.2", Prerelease: true},
			{TagName: "v1.0.0"},
		})
	}))

	info, err := u.CheckForUpdate("1.0.0", "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("expected update info")
	}
	if info.LatestVersion != "2.0.0-beta.2" {
		t.Errorf("expected beta release, got %s", info.LatestVersion)
	}
	if !info.IsPreRelease {
		t.Error("expected pre-release flag")
	}
}

func TestCheckForUpdateRespectsCacheInterval(t *testing.T) {
	calls := 0
	u := testUpdater(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(Release{TagName: "v1.0.0"})
	}))

	if _, err := u.CheckForUpdate("1.0.0", "stable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := u.CheckForUpdate("1.0.0", "stable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Errorf("expected a single API call within the interval, got %d", calls)
	}
}

func TestCheckForUpdateExpiredCache(t *testing.T) {
	u := testUpdater(t, releaseHandler(t, Release{TagName: "v1.0.0"}))

	if _, err := u.CheckForUpdate("1.0.0", "stable"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Age the timestamp past the interval
	cacheFile := filepath.Join(u.cacheDir, "update_check_timestamp")
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(cacheFile, old, old); err != nil {
		t.Fatalf("failed to age cache file: %v", err)
	}

	if !u.shouldCheckForUpdate() {
		t.Error("expired cache should allow a new check")
	}
}

func TestParseVersionTags(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    string
		wantErr bool
	}{
		{"release tag", "v1.5.0", "1.5.0", false},
		{"no prefix", "1.5.0", "1.5.0", false},
		{"beta tag", "v2.0.0-beta.2", "2.0.0-beta.2", false},
		{"short tag", "v1.5", "1.5.0", false},
		{"garbage tag", "v1.x.0", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersion(tt.tag)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for tag %q", tt.tag)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("parseVersion(%q) = %s, want %s", tt.tag, got, tt.want)
			}
		})
	}
}

func TestCheckForUpdateStableIgnoresOlderPreRelease(t *testing.T) {
	// A user on 1.5.0 must not be offered 1.5.0-beta.2 even if GitHub
	// reports it as the latest release
	u := testUpdater(t, releaseHandler(t, Release{TagName: "v1.5.0-beta.2", Prerelease: true}))

	info, err := u.CheckForUpdate("1.5.0", "stable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Errorf("pre-release of the running version is not an update, got %+v", info)
	}
}

func TestCheckForUpdateBetaUserSeesStableRelease(t *testing.T) {
	u := testUpdater(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Release{{TagName: "v1.5.0"}})
	}))

	info, err := u.CheckForUpdate("1.5.0-beta.2", "beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil {
		t.Fatal("the final release supersedes its betas")
	}
	if info.LatestVersion != "1.5.0" {
		t.Errorf("expected 1.5.0, got %s", info.LatestVersion)
	}
}

func TestCheckForUpdateBadReleaseTag(t *testing.T) {
	u := testUpdater(t, releaseHandler(t, Release{TagName: "nightly-20240601"}))

	if _, err := u.CheckForUpdate("1.0.0", "stable"); err == nil {
		t.Fatal("expected error for unparseable release tag")
	}
}

func TestCheckForUpdateServerError(t *testing.T) {
	u := testUpdater(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))

	if _, err := u.CheckForUpdate("1.0.0", "stable"); err == nil {
		t.Fatal("expected error on API failure")
	}
}
