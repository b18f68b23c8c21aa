package github

import (
	"context"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client used for pull request retrieval
type Client struct {
	apiClient *github.Client
	logger    *zap.Logger
}

// NewClient creates a new GitHub client
func NewClient(accessToken string, logger *zap.Logger) *Client {
	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: accessToken},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		apiClient: github.NewClient(tc),
		logger:    logger,
	}
}

// Retriever returns a pull request retriever backed by this client.
func (c *Client) Retriever() *Retriever {
	return NewRetriever(c.apiClient.PullRequests, c.apiClient.Issues, c.logger)
}

// pullRequestAPI is the slice of the GitHub pull request service the
// retriever uses. *github.PullRequestsService satisfies it.
type pullRequestAPI interface {
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error)
	ListReviews(ctx context.Context, owner, repo string, number int, opts *github.ListOptions) ([]*github.PullRequestReview, *github.Response, error)
}

// issueCommentAPI is the slice of the GitHub issue service the retriever
// uses for pull request comments. *github.IssuesService satisfies it.
type issueCommentAPI interface {
	ListComments(ctx context.Context, owner, repo string, number int, opts *github.IssueListCommentsOptions) ([]*github.IssueComment, *github.Response, error)
}
