/*
Package fetchers provides release tag fetching for remote and in-memory sources.

Usage:
	todo:
*/

package fetchers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v33/github"
)

var (
	ErrNoTags = errors.New("no release tags found")
)

// TagFetcher interface defines fetchers methods.
type TagFetcher interface {
	Tags(ctx context.Context) ([]string, error)
}

// StaticTagFetcher serves a fixed tag list from memory (usefull for debugging/testing or for building custom sources logic)
type StaticTagFetcher struct {
	TagNames []string
}

// Tags returns the configured tag list as-is.
func (sf StaticTagFetcher) Tags(ctx context.Context) ([]string, error) {
	if len(sf.TagNames) == 0 {
		return nil, ErrNoTags
	}
	return sf.TagNames, nil
}

// GitHubTagFetcher lists release tag names from the specified repository.
// Owner and Repo represent '{owner}/{repo}' notation.
// httpClient can be used as OAuth2 or BasicAuth http transport.
type GitHubTagFetcher struct {
	Owner        string
	Repo         string
	githubClient *github.Client
}

// NewGitHubTagFetcher constructs GitHubTagFetcher with specified parameters.
// httpClient can be used as OAuth2 or BasicAuth http transport.
func NewGitHubTagFetcher(httpClient *http.Client, owner, repo string) TagFetcher {
	return &GitHubTagFetcher{
		Owner:        owner,
		Repo:         repo,
		githubClient: github.NewClient(httpClient),
	}
}

// Tags fetches every tag name from the configured repository, following
// pagination until the API reports no further pages.
func (f GitHubTagFetcher) Tags(ctx context.Context) ([]string, error) {
	opts := github.ListOptions{PerPage: 100}

	var result []string
	for {
		tags, resp, err := f.githubClient.Repositories.ListTags(ctx, f.Owner, f.Repo, &opts)
		if err != nil {
			return nil, fmt.Errorf("unable to list tags for '%s/%s' from github: %w", f.Owner, f.Repo, err)
		}
		for _, tag := range tags {
			result = append(result, tag.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if len(result) == 0 {
		return nil, ErrNoTags
	}
	return result, nil
}
