/*
Package relmon provides a client for using the release-monitoring.org public API.

Usage:
	todo:
*/
package relmon

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/go-querystring/query"
)

// relmonHostname - release-monitoring.org API hostname (used as default API).
//
// Anitya (release-monitoring.org) tracks upstream releases across ecosystems
// and distributions. You can get more info on the project and it's official
// API here: release-monitoring.org/static/docs/api.html
var relmonHostname string = "https://release-monitoring.org"

// relmonBaseURL - release-monitoring.org base API url (used as default client baseURL)
var relmonBaseURL *url.URL

func init() {
	relmonBaseURL, _ = url.Parse(relmonHostname)
}

// Client represents the API surface consumed by higher layers.
type Client interface {
	Projects(ctx context.Context, opts *ProjectsOptions) (*ProjectsPage, *http.Response, error)
}

// NewClient constructs a new RelmonClient.
//
// If httpClient or URL is nil - default values will be used.
// Pass URL only if you are sure that the address is compatible with the Anitya v2 API.
func NewClient(httpClient *http.Client, URL *url.URL) *RelmonClient {
	if URL == nil {
		URL = relmonBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &RelmonClient{httpClient: httpClient, baseURL: *URL}
}

// RelmonClient is used to communicate with an Anitya compatible API service.
type RelmonClient struct {
	httpClient *http.Client
	baseURL    url.URL
}

// ProjectsOptions specifies the optional parameters to the Projects() method.
type ProjectsOptions struct {
	// For filtering projects by exact name.
	Name string `url:"name,omitempty"`
	// For filtering projects by ecosystem (e.g. 'pypi', 'crates.io').
	Ecosystem string `url:"ecosystem,omitempty"`
	Page      int    `url:"page,omitempty"`
	// Defaults to 25 server-side, capped at 250.
	ItemsPerPage int `url:"items_per_page,omitempty"`
}

// Projects method lists tracked projects together with their known release versions.
func (rc RelmonClient) Projects(ctx context.Context, opts *ProjectsOptions) (*ProjectsPage, *http.Response, error) {
	v, err := query.Values(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing the options: %w", err)
	}

	route := fmt.Sprintf("%s/%s?%s", &rc.baseURL, "api/v2/projects/", v.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", route, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create a request: %w", err)
	}
	resp, err := rc.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to send the request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return nil, resp, fmt.Errorf("release-monitoring returned with !=200 status code")
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, fmt.Errorf("unable to read the response body: %w", err)
	}

	pp := ProjectsPage{}
	if err = json.Unmarshal(body, &pp); err != nil {
		return nil, resp, fmt.Errorf("unable to parse the response body: %w", err)
	}

	return &pp, resp, nil
}

// ProjectsPage represents one page of the projects listing.
type ProjectsPage struct {
	Items        []Project `json:"items"`
	ItemsPerPage int       `json:"items_per_page"`
	Page         int       `json:"page"`
	TotalItems   int       `json:"total_items"`
}

// Project represents one tracked upstream project and its known releases.
type Project struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Backend         string   `json:"backend"`
	Ecosystem       string   `json:"ecosystem"`
	Homepage        string   `json:"homepage"`
	RegexURL        string   `json:"regex,omitempty"`
	Version         string   `json:"version"`
	VersionURL      string   `json:"version_url"`
	Versions        []string `json:"versions"`
	StableVersions  []string `json:"stable_versions"`
	CreatedOn       float64  `json:"created_on"`
	UpdatedOn       float64  `json:"updated_on"`
	LatestStableURL string   `json:"latest_stable_version,omitempty"`
}
