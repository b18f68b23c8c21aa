// Package changelog renders normalized pull requests into release note
// lines using a placeholder template.
package changelog

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/clintrovert/prnotes/pkg/types"
)

// RetrieveProperty renders the named pull request property as a single
// display string. List and set values are joined with commas, in the label
// set's sorted order. An unrecognized property name emits one warning
// carrying the diagnostic context and falls back to the body. Never fails.
func RetrieveProperty(logger *zap.Logger, pr *types.PullRequestInfo, property, context string) string {
	switch property {
	case "number":
		return strconv.Itoa(pr.Number)
	case "title":
		return pr.Title
	case "htmlURL":
		return pr.HTMLURL
	case "baseBranch":
		return pr.BaseBranch
	case "branch":
		return pr.HeadBranch
	case "createdAt":
		return pr.CreatedAt.Format(time.RFC3339)
	case "mergedAt":
		if pr.MergedAt == nil {
			return ""
		}
		return pr.MergedAt.Format(time.RFC3339)
	case "mergeCommitSha":
		return pr.MergeCommitSHA
	case "author":
		return pr.Author
	case "repoName":
		return pr.RepoName
	case "labels":
		return pr.Labels.Join(",")
	case "milestone":
		return pr.Milestone
	case "body":
		return pr.Body
	case "assignees":
		return strings.Join(pr.Assignees, ",")
	case "requestedReviewers":
		return strings.Join(pr.RequestedReviewers, ",")
	case "approvedReviewers":
		return strings.Join(pr.ApprovedReviewers, ",")
	case "status":
		return string(pr.Status)
	default:
		logger.Warn("unknown pull request property, falling back to body",
			zap.String("property", property),
			zap.String("context", context),
		)
		return pr.Body
	}
}
