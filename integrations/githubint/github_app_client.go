// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package githubint

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v62/github"
	"github.com/l3montree-dev/depwatch/shared"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var ErrGithubAppNotConfigured = errors.New("github app is not configured, set GITHUB_APP_ID and GITHUB_PRIVATE_KEY")

type Config struct {
	AppID int64
	// path to the pem file of the app
	PrivateKeyPath string
	// only set for github enterprise
	BaseURL string
}

func ConfigFromEnv() (Config, error) {
	appID := os.Getenv("GITHUB_APP_ID")
	if appID == "" {
		return Config{}, nil
	}
	appIDInt, err := strconv.ParseInt(appID, 10, 64)
	if err != nil {
		return Config{}, errors.Wrap(err, "GITHUB_APP_ID is not a number")
	}
	return Config{
		AppID:          appIDInt,
		PrivateKeyPath: os.Getenv("GITHUB_PRIVATE_KEY"),
		BaseURL:        os.Getenv("GITHUB_API_URL"),
	}, nil
}

// githubAppClient talks to github on behalf of the installations of a single
// app. Installation clients are created lazily and reused.
type githubAppClient struct {
	config Config

	mu        sync.Mutex
	appClient *github.Client
	clients   map[int64]*github.Client

	// replaced in tests
	newAppClient          func() (*github.Client, error)
	newInstallationClient func(installationID int64) (*github.Client, error)
}

var _ shared.GithubAppClient = &githubAppClient{}

func NewGithubAppClient(config Config) *githubAppClient {
	c := &githubAppClient{
		config:  config,
		clients: make(map[int64]*github.Client),
	}
	c.newAppClient = c.appTransportClient
	c.newInstallationClient = c.installationTransportClient
	return c
}

func (c *githubAppClient) withBaseURL(client *github.Client) (*github.Client, error) {
	if c.config.BaseURL == "" {
		return client, nil
	}
	u, err := url.Parse(strings.TrimSuffix(c.config.BaseURL, "/") + "/")
	if err != nil {
		return nil, errors.Wrap(err, "invalid github api url")
	}
	client.BaseURL = u
	return client, nil
}

func (c *githubAppClient) appTransportClient() (*github.Client, error) {
	if c.config.AppID == 0 {
		return nil, ErrGithubAppNotConfigured
	}
	// endpoints below /app require the jwt of the app itself
	atr, err := ghinstallation.NewAppsTransportKeyFromFile(otelhttp.NewTransport(http.DefaultTransport), c.config.AppID, c.config.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not create app transport")
	}
	return c.withBaseURL(github.NewClient(&http.Client{Transport: atr}))
}

func (c *githubAppClient) installationTransportClient(installationID int64) (*github.Client, error) {
	if c.config.AppID == 0 {
		return nil, ErrGithubAppNotConfigured
	}
	itr, err := ghinstallation.NewKeyFromFile(otelhttp.NewTransport(http.DefaultTransport), c.config.AppID, installationID, c.config.PrivateKeyPath)
	if err != nil {
		return nil, errors.Wrap(err, "could not create installation transport")
	}
	if c.config.BaseURL != "" {
		itr.BaseURL = strings.TrimSuffix(c.config.BaseURL, "/")
	}
	return c.withBaseURL(github.NewClient(&http.Client{Transport: itr}))
}

func (c *githubAppClient) app() (*github.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.appClient != nil {
		return c.appClient, nil
	}
	client, err := c.newAppClient()
	if err != nil {
		return nil, err
	}
	c.appClient = client
	return client, nil
}

func (c *githubAppClient) installation(installationID int64) (*github.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[installationID]; ok {
		return client, nil
	}
	client, err := c.newInstallationClient(installationID)
	if err != nil {
		return nil, err
	}
	c.clients[installationID] = client
	return client, nil
}

// ListInstallationRepositories returns the login of the account the app is
// installed on and every repository the installation can access.
func (c *githubAppClient) ListInstallationRepositories(ctx context.Context, installationID int64) (string, []shared.GithubRepository, error) {
	appClient, err := c.app()
	if err != nil {
		return "", nil, err
	}
	installation, _, err := appClient.Apps.GetInstallation(ctx, installationID)
	if err != nil {
		return "", nil, errors.Wrapf(err, "could not get installation %d", installationID)
	}

	client, err := c.installation(installationID)
	if err != nil {
		return "", nil, err
	}

	repos := []shared.GithubRepository{}
	opts := &github.ListOptions{Page: 1, PerPage: 100}
	for {
		result, res, err := client.Apps.ListRepos(ctx, opts)
		if err != nil {
			return "", nil, errors.Wrap(err, "could not list installation repositories")
		}
		for _, r := range result.Repositories {
			repos = append(repos, shared.GithubRepository{
				ID:            r.GetID(),
				Owner:         r.GetOwner().GetLogin(),
				Name:          r.GetName(),
				FullName:      r.GetFullName(),
				DefaultBranch: r.GetDefaultBranch(),
			})
		}
		if res.NextPage == 0 {
			break
		}
		opts.Page = res.NextPage
	}

	return installation.GetAccount().GetLogin(), repos, nil
}

func (c *githubAppClient) GetFileContent(ctx context.Context, installationID int64, owner, repo, ref, path string) ([]byte, error) {
	client, err := c.installation(installationID)
	if err != nil {
		return nil, err
	}

	file, _, _, err := client.Repositories.GetContents(ctx, owner, repo, path, &github.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		return nil, errors.Wrapf(err, "could not get %s of %s/%s", path, owner, repo)
	}
	if file == nil {
		return nil, errors.Errorf("%s of %s/%s is a directory", path, owner, repo)
	}

	content, err := file.GetContent()
	if err != nil {
		return nil, errors.Wrap(err, "could not decode file content")
	}
	return []byte(content), nil
}
