package github

import (
	"strings"

	"github.com/google/go-github/v57/github"

	"github.com/clintrovert/prnotes/pkg/types"
)

// MapPullRequest converts a raw GitHub pull request into a PullRequestInfo.
// Every field access is total: missing optional fields become empty strings
// or empty lists, never an error. A synthetic label recording the status tag
// is always added to the label set.
func MapPullRequest(raw *github.PullRequest, status types.Status) *types.PullRequestInfo {
	labels := types.NewLabelSet()
	for _, label := range raw.Labels {
		labels.Add(strings.ToLower(label.GetName()))
	}
	labels.Add(types.StatusLabel(status))

	pr := &types.PullRequestInfo{
		Number:             raw.GetNumber(),
		Title:              raw.GetTitle(),
		HTMLURL:            raw.GetHTMLURL(),
		BaseBranch:         raw.GetBase().GetRef(),
		HeadBranch:         raw.GetHead().GetRef(),
		CreatedAt:          raw.GetCreatedAt().Time,
		MergeCommitSHA:     raw.GetMergeCommitSHA(),
		Author:             raw.GetUser().GetLogin(),
		RepoName:           raw.GetBase().GetRepo().GetFullName(),
		Labels:             labels,
		Milestone:          raw.GetMilestone().GetTitle(),
		Body:               raw.GetBody(),
		Assignees:          logins(raw.Assignees),
		RequestedReviewers: logins(raw.RequestedReviewers),
		ApprovedReviewers:  []string{},
		Status:             status,
	}

	if raw.MergedAt != nil {
		mergedAt := raw.MergedAt.Time
		pr.MergedAt = &mergedAt
	}

	return pr
}

// MapReview converts a raw GitHub pull request review into a ReviewInfo.
func MapReview(raw *github.PullRequestReview) *types.ReviewInfo {
	review := &types.ReviewInfo{
		ID:      raw.GetID(),
		HTMLURL: raw.GetHTMLURL(),
		Author:  raw.GetUser().GetLogin(),
		Body:    raw.GetBody(),
		State:   raw.GetState(),
	}

	if raw.SubmittedAt != nil {
		submittedAt := raw.SubmittedAt.Time
		review.SubmittedAt = &submittedAt
	}

	return review
}

// MapComment converts a raw GitHub issue comment into a CommentInfo.
func MapComment(raw *github.IssueComment) *types.CommentInfo {
	comment := &types.CommentInfo{
		ID:      raw.GetID(),
		HTMLURL: raw.GetHTMLURL(),
		Author:  raw.GetUser().GetLogin(),
		Body:    raw.GetBody(),
	}

	if raw.CreatedAt != nil {
		createdAt := raw.CreatedAt.Time
		comment.CreatedAt = &createdAt
	}

	return comment
}

// logins maps users to their handles slot for slot, substituting an empty
// string for a missing handle rather than dropping the entry.
func logins(users []*github.User) []string {
	handles := make([]string, 0, len(users))
	for _, user := range users {
		handles = append(handles, user.GetLogin())
	}
	return handles
}
