package types

import (
	"sort"
	"strings"
	"time"
)

// Status marks whether a pull request is still open or has been merged.
type Status string

const (
	StatusOpen   Status = "open"
	StatusMerged Status = "merged"
)

// StatusLabel returns the synthetic label recording a status inside a label set.
func StatusLabel(status Status) string {
	return "--rcba-" + string(status)
}

// PullRequestInfo represents one normalized pull request
type PullRequestInfo struct {
	Number             int
	Title              string
	HTMLURL            string
	BaseBranch         string
	HeadBranch         string
	CreatedAt          time.Time
	MergedAt           *time.Time
	MergeCommitSHA     string
	Author             string
	RepoName           string
	Labels             LabelSet
	Milestone          string
	Body               string
	Assignees          []string
	RequestedReviewers []string
	ApprovedReviewers  []string
	Reviews            []*ReviewInfo
	Comments           []*CommentInfo
	Status             Status
}

// ReviewInfo represents one normalized pull request review
type ReviewInfo struct {
	ID          int64
	HTMLURL     string
	SubmittedAt *time.Time
	Author      string
	Body        string
	State       string
}

// CommentInfo represents one normalized pull request comment
type CommentInfo struct {
	ID        int64
	HTMLURL   string
	CreatedAt *time.Time
	Author    string
	Body      string
}

// EmptyReview and EmptyComment are safe defaults for callers that need a
// non-nil value when no review or comment exists.
var (
	EmptyReview  = &ReviewInfo{}
	EmptyComment = &CommentInfo{}
)

// EffectiveTime returns the merge timestamp if the pull request has one,
// otherwise its creation timestamp.
func EffectiveTime(pr *PullRequestInfo) time.Time {
	if pr.MergedAt != nil {
		return *pr.MergedAt
	}
	return pr.CreatedAt
}

// LabelSet holds a unique set of label strings. Values and Join iterate in
// sorted order so rendered output is deterministic.
type LabelSet map[string]struct{}

// NewLabelSet creates a label set from the given labels.
func NewLabelSet(labels ...string) LabelSet {
	set := make(LabelSet, len(labels))
	for _, label := range labels {
		set.Add(label)
	}
	return set
}

// Add inserts a label into the set.
func (s LabelSet) Add(label string) {
	s[label] = struct{}{}
}

// Has reports whether the set contains the given label.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Len returns the number of labels in the set.
func (s LabelSet) Len() int {
	return len(s)
}

// Values returns the labels in sorted order.
func (s LabelSet) Values() []string {
	values := make([]string, 0, len(s))
	for label := range s {
		values = append(values, label)
	}
	sort.Strings(values)
	return values
}

// Join renders the labels as a single string separated by sep.
func (s LabelSet) Join(sep string) string {
	return strings.Join(s.Values(), sep)
}
