package github

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v57/github"
	"go.uber.org/zap"

	"github.com/clintrovert/prnotes/pkg/types"
)

// maxPageSize is the largest page the GitHub list APIs serve.
const maxPageSize = 100

// reviewStateApproved is the review state counting toward approved reviewers.
const reviewStateApproved = "APPROVED"

// Retriever fetches pull requests, reviews and comments from GitHub,
// normalizing each raw record into the types package entities. Pagination is
// sequential; the early-exit rules in GetBetweenDates rely on pages arriving
// in the order the API returns them.
type Retriever struct {
	prs    pullRequestAPI
	issues issueCommentAPI
	logger *zap.Logger
}

// NewRetriever creates a new pull request retriever
func NewRetriever(prs pullRequestAPI, issues issueCommentAPI, logger *zap.Logger) *Retriever {
	return &Retriever{
		prs:    prs,
		issues: issues,
		logger: logger,
	}
}

// GetSingle fetches one pull request by number. Any failure from the
// underlying fetch is downgraded to a warning and a nil result.
func (r *Retriever) GetSingle(ctx context.Context, owner, repo string, number int) *types.PullRequestInfo {
	raw, _, err := r.prs.Get(ctx, owner, repo, number)
	if err != nil {
		r.logger.Warn("could not fetch pull request",
			zap.String("repo", owner+"/"+repo),
			zap.Int("number", number),
			zap.Error(err),
		)
		return nil
	}

	status := types.StatusOpen
	if raw.MergedAt != nil {
		status = types.StatusMerged
	}
	return MapPullRequest(raw, status)
}

// GetBetweenDates fetches pull requests merged between from and to, sorted
// ascending by merge time. Pages are requested newest-merged-first, so
// iteration stops as soon as a page starts before the window: every later
// page is older still. The page containing the boundary is still processed
// in full, so merged records from that page may predate the window.
func (r *Retriever) GetBetweenDates(ctx context.Context, owner, repo string, from, to time.Time, maxPullRequests int) ([]*types.PullRequestInfo, error) {
	pageSize := maxPageSize
	if maxPullRequests < pageSize {
		pageSize = maxPullRequests
	}

	opts := &github.PullRequestListOptions{
		State:       "closed",
		Sort:        "merged",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	prs := make([]*types.PullRequestInfo, 0, maxPullRequests)
	for {
		page, resp, err := r.prs.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list closed pull requests for %s/%s: %w", owner, repo, err)
		}
		if len(page) == 0 {
			break
		}

		for _, raw := range page {
			// Closed-but-unmerged pull requests carry no merge timestamp.
			if raw.MergedAt == nil {
				continue
			}
			prs = append(prs, MapPullRequest(raw, types.StatusMerged))
		}

		if len(prs) >= maxPullRequests {
			r.logger.Warn("reached maximum pull request count",
				zap.String("repo", owner+"/"+repo),
				zap.Int("max", maxPullRequests),
			)
			prs = prs[:maxPullRequests]
			break
		}
		if first := page[0].MergedAt; first != nil && first.Time.Before(from) {
			break
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return types.SortPullRequests(prs, types.SortSpec{Order: types.OrderAscending, On: types.SortByMergedAt}), nil
}

// GetOpen fetches open pull requests, sorted ascending by effective time.
func (r *Retriever) GetOpen(ctx context.Context, owner, repo string, maxPullRequests int) ([]*types.PullRequestInfo, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: github.ListOptions{PerPage: maxPageSize},
	}

	prs := make([]*types.PullRequestInfo, 0, maxPullRequests)
	for {
		page, resp, err := r.prs.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list open pull requests for %s/%s: %w", owner, repo, err)
		}
		if len(page) == 0 {
			break
		}

		for _, raw := range page {
			prs = append(prs, MapPullRequest(raw, types.StatusOpen))
		}

		if len(prs) >= maxPullRequests {
			r.logger.Warn("reached maximum pull request count",
				zap.String("repo", owner+"/"+repo),
				zap.Int("max", maxPullRequests),
			)
			prs = prs[:maxPullRequests]
			break
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return types.SortPullRequests(prs, types.SortSpec{Order: types.OrderAscending, On: types.SortByMergedAt}), nil
}

// GetReviewers collects the distinct handles of reviewers who approved the
// pull request, across all review pages, and stores them on the entity.
func (r *Retriever) GetReviewers(ctx context.Context, owner, repo string, pr *types.PullRequestInfo) error {
	opts := &github.ListOptions{PerPage: maxPageSize}

	seen := make(map[string]struct{})
	approved := make([]string, 0)
	for {
		page, resp, err := r.prs.ListReviews(ctx, owner, repo, pr.Number, opts)
		if err != nil {
			return fmt.Errorf("failed to list reviews for %s/%s#%d: %w", owner, repo, pr.Number, err)
		}

		for _, raw := range page {
			if raw.GetState() != reviewStateApproved {
				continue
			}
			handle := raw.GetUser().GetLogin()
			if _, ok := seen[handle]; ok {
				continue
			}
			seen[handle] = struct{}{}
			approved = append(approved, handle)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	pr.ApprovedReviewers = approved
	return nil
}

// GetReviews attaches every review of the pull request to the entity.
func (r *Retriever) GetReviews(ctx context.Context, owner, repo string, pr *types.PullRequestInfo) error {
	opts := &github.ListOptions{PerPage: maxPageSize}

	reviews := make([]*types.ReviewInfo, 0)
	for {
		page, resp, err := r.prs.ListReviews(ctx, owner, repo, pr.Number, opts)
		if err != nil {
			return fmt.Errorf("failed to list reviews for %s/%s#%d: %w", owner, repo, pr.Number, err)
		}

		for _, raw := range page {
			reviews = append(reviews, MapReview(raw))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	pr.Reviews = reviews
	return nil
}

// GetComments attaches every issue comment of the pull request to the entity.
func (r *Retriever) GetComments(ctx context.Context, owner, repo string, pr *types.PullRequestInfo) error {
	opts := &github.IssueListCommentsOptions{
		Sort:        github.String("created"),
		Direction:   github.String("desc"),
		ListOptions: github.ListOptions{PerPage: maxPageSize},
	}

	comments := make([]*types.CommentInfo, 0)
	for {
		page, resp, err := r.issues.ListComments(ctx, owner, repo, pr.Number, opts)
		if err != nil {
			return fmt.Errorf("failed to list comments for %s/%s#%d: %w", owner, repo, pr.Number, err)
		}

		for _, raw := range page {
			comments = append(comments, MapComment(raw))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	pr.Comments = comments
	return nil
}
