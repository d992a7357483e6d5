package verhub

import (
	"context"
	"fmt"
	"net/http"

	"github.com/verhub/verhub-core/providers/api/relmon"
	"github.com/verhub/verhub-core/providers/fetchers"
	"github.com/verhub/verhub-core/providers/hversion"
)

// UpdatesChecker represents checkers interface.
type UpdatesChecker interface {
	// LatestRelease returns the highest-ranked known release.
	LatestRelease(ctx context.Context) (*Update, error)
	// UpdatesSince returns releases ranking strictly above current, ascending.
	UpdatesSince(ctx context.Context, current string) ([]Update, error)
}

// Update represents one release of a tracked project.
type Update struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	CurrentVersion string `json:"current_version,omitempty"`
	URL            string `json:"url,omitempty"`
}

// NewGitHubUpdatesChecker constructs an UpdatesChecker over the tag list of a
// GitHub repository.
func NewGitHubUpdatesChecker(httpClient *http.Client, owner, repo string) UpdatesChecker {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &TagUpdatesChecker{
		Name:    owner + "/" + repo,
		fetcher: fetchers.NewGitHubTagFetcher(httpClient, owner, repo),
	}
}

// NewTagUpdatesChecker constructs an UpdatesChecker over any TagFetcher.
func NewTagUpdatesChecker(name string, fetcher fetchers.TagFetcher) UpdatesChecker {
	return &TagUpdatesChecker{Name: name, fetcher: fetcher}
}

// TagUpdatesChecker ranks the tags of one repository with the hversion order.
type TagUpdatesChecker struct {
	Name    string
	fetcher fetchers.TagFetcher
}

// LatestRelease returns the highest-ranked tag.
func (tc TagUpdatesChecker) LatestRelease(ctx context.Context) (*Update, error) {
	tags, err := tc.fetcher.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load tags for %q: %w", tc.Name, err)
	}

	latest, ok := Latest(tags)
	if !ok {
		return nil, fmt.Errorf("no releases found for %q", tc.Name)
	}
	return &Update{Name: tc.Name, Version: latest.Value()}, nil
}

// UpdatesSince returns every tag ranking strictly above current, ascending.
// Tags ranking equal to current (e.g. differing only in build metadata) are
// not updates.
func (tc TagUpdatesChecker) UpdatesSince(ctx context.Context, current string) ([]Update, error) {
	tags, err := tc.fetcher.Tags(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load tags for %q: %w", tc.Name, err)
	}

	cur := hversion.Parse(current)
	result := []Update{}
	for _, v := range SortStrings(tags) {
		if v.Compare(cur) == hversion.Greater {
			result = append(result, Update{Name: tc.Name, Version: v.Value(), CurrentVersion: current})
		}
	}
	return result, nil
}

// NewRelmonUpdatesChecker constructs an UpdatesChecker backed by the
// release-monitoring.org project feed.
func NewRelmonUpdatesChecker(httpClient *http.Client, project string) UpdatesChecker {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	api := relmon.NewClient(httpClient, nil)

	return &RelmonUpdatesChecker{Project: project, api: api}
}

// RelmonUpdatesChecker ranks the versions release-monitoring.org knows for one
// project. The feed's own notion of 'latest' is ignored, only the hversion
// order decides.
type RelmonUpdatesChecker struct {
	Project string
	api     relmon.Client
}

// LatestRelease returns the highest-ranked version the feed reports.
func (rc RelmonUpdatesChecker) LatestRelease(ctx context.Context) (*Update, error) {
	project, err := rc.lookup(ctx)
	if err != nil {
		return nil, err
	}

	latest, ok := Latest(project.Versions)
	if !ok {
		return nil, fmt.Errorf("no releases found for %q", rc.Project)
	}
	return &Update{Name: project.Name, Version: latest.Value(), URL: project.Homepage}, nil
}

// UpdatesSince returns every reported version ranking strictly above current, ascending.
func (rc RelmonUpdatesChecker) UpdatesSince(ctx context.Context, current string) ([]Update, error) {
	project, err := rc.lookup(ctx)
	if err != nil {
		return nil, err
	}

	cur := hversion.Parse(current)
	result := []Update{}
	for _, v := range SortStrings(project.Versions) {
		if v.Compare(cur) == hversion.Greater {
			result = append(result, Update{Name: project.Name, Version: v.Value(), CurrentVersion: current, URL: project.Homepage})
		}
	}
	return result, nil
}

// lookup resolves the configured project through the projects listing.
func (rc RelmonUpdatesChecker) lookup(ctx context.Context) (*relmon.Project, error) {
	page, _, err := rc.api.Projects(ctx, &relmon.ProjectsOptions{Name: rc.Project})
	if err != nil {
		return nil, fmt.Errorf("unable to query release-monitoring for %q: %w", rc.Project, err)
	}
	if len(page.Items) == 0 {
		return nil, fmt.Errorf("project %q not found", rc.Project)
	}
	return &page.Items[0], nil
}
