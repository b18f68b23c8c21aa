package github

import (
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"

	"github.com/clintrovert/prnotes/pkg/types"
)

func TestMapPullRequest_FullRecord(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	merged := created.Add(72 * time.Hour)

	raw := &github.PullRequest{
		Number:         github.Int(42),
		Title:          github.String("Add pagination"),
		HTMLURL:        github.String("https://github.com/octo/demo/pull/42"),
		Body:           github.String("adds cursor pagination"),
		CreatedAt:      &github.Timestamp{Time: created},
		MergedAt:       &github.Timestamp{Time: merged},
		MergeCommitSHA: github.String("abc123"),
		User:           &github.User{Login: github.String("octocat")},
		Milestone:      &github.Milestone{Title: github.String("v1.0")},
		Base: &github.PullRequestBranch{
			Ref:  github.String("main"),
			Repo: &github.Repository{FullName: github.String("octo/demo")},
		},
		Head: &github.PullRequestBranch{Ref: github.String("feature/pagination")},
		Labels: []*github.Label{
			{Name: github.String("Bug")},
			{Name: github.String("ENHANCEMENT")},
		},
		Assignees: []*github.User{
			{Login: github.String("alice")},
			{}, // missing handle keeps its slot as an empty string
		},
		RequestedReviewers: []*github.User{
			{Login: github.String("bob")},
		},
	}

	pr := MapPullRequest(raw, types.StatusMerged)

	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "Add pagination", pr.Title)
	assert.Equal(t, "https://github.com/octo/demo/pull/42", pr.HTMLURL)
	assert.Equal(t, "main", pr.BaseBranch)
	assert.Equal(t, "feature/pagination", pr.HeadBranch)
	assert.Equal(t, created, pr.CreatedAt)
	if assert.NotNil(t, pr.MergedAt) {
		assert.Equal(t, merged, *pr.MergedAt)
	}
	assert.Equal(t, "abc123", pr.MergeCommitSHA)
	assert.Equal(t, "octocat", pr.Author)
	assert.Equal(t, "octo/demo", pr.RepoName)
	assert.Equal(t, "v1.0", pr.Milestone)
	assert.Equal(t, "adds cursor pagination", pr.Body)
	assert.Equal(t, []string{"alice", ""}, pr.Assignees)
	assert.Equal(t, []string{"bob"}, pr.RequestedReviewers)
	assert.Empty(t, pr.ApprovedReviewers)
	assert.Equal(t, types.StatusMerged, pr.Status)

	// Labels are lowercased and carry the synthetic status marker.
	assert.Equal(t, []string{"--rcba-merged", "bug", "enhancement"}, pr.Labels.Values())
}

func TestMapPullRequest_SparseOpenRecord(t *testing.T) {
	raw := &github.PullRequest{
		Number: github.Int(7),
	}

	pr := MapPullRequest(raw, types.StatusOpen)

	assert.Nil(t, pr.MergedAt)
	assert.Equal(t, types.StatusOpen, pr.Status)
	assert.Equal(t, []string{"--rcba-open"}, pr.Labels.Values())
	assert.Empty(t, pr.Title)
	assert.Empty(t, pr.Author)
	assert.Empty(t, pr.Milestone)
	assert.Empty(t, pr.Body)
	assert.Empty(t, pr.Assignees)
	assert.Empty(t, pr.RequestedReviewers)
}

func TestMapPullRequest_Idempotent(t *testing.T) {
	raw := &github.PullRequest{
		Number:    github.Int(9),
		Title:     github.String("stable"),
		CreatedAt: &github.Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)},
		Labels:    []*github.Label{{Name: github.String("bug")}},
	}

	first := MapPullRequest(raw, types.StatusOpen)
	second := MapPullRequest(raw, types.StatusOpen)

	assert.Equal(t, first, second)
}

func TestMapReview_Defaults(t *testing.T) {
	submitted := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)

	full := MapReview(&github.PullRequestReview{
		ID:          github.Int64(100),
		HTMLURL:     github.String("https://github.com/octo/demo/pull/42#pullrequestreview-100"),
		SubmittedAt: &github.Timestamp{Time: submitted},
		User:        &github.User{Login: github.String("carol")},
		Body:        github.String("looks good"),
		State:       github.String("APPROVED"),
	})
	assert.Equal(t, int64(100), full.ID)
	assert.Equal(t, "carol", full.Author)
	assert.Equal(t, "APPROVED", full.State)
	if assert.NotNil(t, full.SubmittedAt) {
		assert.Equal(t, submitted, *full.SubmittedAt)
	}

	sparse := MapReview(&github.PullRequestReview{ID: github.Int64(101)})
	assert.Nil(t, sparse.SubmittedAt)
	assert.Empty(t, sparse.Author)
	assert.Empty(t, sparse.Body)
	assert.Empty(t, sparse.State)
}

func TestMapComment_Defaults(t *testing.T) {
	created := time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC)

	full := MapComment(&github.IssueComment{
		ID:        github.Int64(200),
		HTMLURL:   github.String("https://github.com/octo/demo/pull/42#issuecomment-200"),
		CreatedAt: &github.Timestamp{Time: created},
		User:      &github.User{Login: github.String("dave")},
		Body:      github.String("nit: typo"),
	})
	assert.Equal(t, int64(200), full.ID)
	assert.Equal(t, "dave", full.Author)
	if assert.NotNil(t, full.CreatedAt) {
		assert.Equal(t, created, *full.CreatedAt)
	}

	sparse := MapComment(&github.IssueComment{ID: github.Int64(201)})
	assert.Nil(t, sparse.CreatedAt)
	assert.Empty(t, sparse.Author)
	assert.Empty(t, sparse.Body)
}
