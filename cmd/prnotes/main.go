package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clintrovert/prnotes/internal/changelog"
	"github.com/clintrovert/prnotes/internal/config"
	"github.com/clintrovert/prnotes/internal/github"
	"github.com/clintrovert/prnotes/internal/tags"
	"github.com/clintrovert/prnotes/pkg/types"
)

type options struct {
	configPath string
	owner      string
	repo       string
	repoPath   string
	fromTag    string
	toTag      string
	from       string
	to         string
	max        int
	sort       string
	open       bool
	reviewers  bool
	reviews    bool
	comments   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "prnotes",
		Short:        "Collect merged pull requests for release notes",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to YAML config file")
	cmd.Flags().StringVar(&opts.owner, "owner", "", "repository owner")
	cmd.Flags().StringVar(&opts.repo, "repo", "", "repository name")
	cmd.Flags().StringVar(&opts.repoPath, "repo-path", "", "path to local clone for tag resolution")
	cmd.Flags().StringVar(&opts.fromTag, "from-tag", "", "tag opening the date window")
	cmd.Flags().StringVar(&opts.toTag, "to-tag", "", "tag closing the date window")
	cmd.Flags().StringVar(&opts.from, "from", "", "window start (RFC 3339), overrides --from-tag")
	cmd.Flags().StringVar(&opts.to, "to", "", "window end (RFC 3339), overrides --to-tag")
	cmd.Flags().IntVar(&opts.max, "max", 0, "maximum number of pull requests to fetch")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "result order, ASC or DESC")
	cmd.Flags().BoolVar(&opts.open, "open", false, "fetch open pull requests instead of merged ones")
	cmd.Flags().BoolVar(&opts.reviewers, "reviewers", false, "collect approved reviewers per pull request")
	cmd.Flags().BoolVar(&opts.reviews, "reviews", false, "attach reviews to each pull request")
	cmd.Flags().BoolVar(&opts.comments, "comments", false, "attach comments to each pull request")

	return cmd
}

func run(ctx context.Context, opts *options) error {
	// .env is optional; a missing file is not an error
	_ = godotenv.Load()

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return err
	}

	client := github.NewClient(cfg.Token, logger)
	retriever := client.Retriever()

	prs, err := fetch(ctx, cfg, opts, retriever, logger)
	if err != nil {
		return err
	}

	for _, pr := range prs {
		if opts.reviewers {
			if err := retriever.GetReviewers(ctx, cfg.Owner, cfg.Repo, pr); err != nil {
				return err
			}
		}
		if opts.reviews {
			if err := retriever.GetReviews(ctx, cfg.Owner, cfg.Repo, pr); err != nil {
				return err
			}
		}
		if opts.comments {
			if err := retriever.GetComments(ctx, cfg.Owner, cfg.Repo, pr); err != nil {
				return err
			}
		}
	}

	types.SortPullRequests(prs, types.ParseSortSpec(cfg.Sort))
	fmt.Println(changelog.Build(logger, prs, cfg.Template))
	return nil
}

// fetch retrieves open pull requests or the merged pull requests inside the
// configured date window.
func fetch(ctx context.Context, cfg *config.Config, opts *options, retriever *github.Retriever, logger *zap.Logger) ([]*types.PullRequestInfo, error) {
	if opts.open {
		return retriever.GetOpen(ctx, cfg.Owner, cfg.Repo, cfg.MaxPullRequests)
	}

	from, to, err := dateWindow(cfg, logger)
	if err != nil {
		return nil, err
	}
	return retriever.GetBetweenDates(ctx, cfg.Owner, cfg.Repo, from, to, cfg.MaxPullRequests)
}

// dateWindow resolves the retrieval window. Explicit dates win over the tag
// range.
func dateWindow(cfg *config.Config, logger *zap.Logger) (time.Time, time.Time, error) {
	if cfg.From != "" {
		from, err := time.Parse(time.RFC3339, cfg.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %q: %w", cfg.From, err)
		}
		to := time.Now()
		if cfg.To != "" {
			if to, err = time.Parse(time.RFC3339, cfg.To); err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %q: %w", cfg.To, err)
			}
		}
		return from, to, nil
	}

	if cfg.FromTag != "" && cfg.ToTag != "" {
		return tags.NewResolver(logger).DateRange(cfg.RepoPath, cfg.FromTag, cfg.ToTag)
	}

	return time.Time{}, time.Time{}, fmt.Errorf("either from/to dates or fromTag/toTag are required")
}

func applyFlags(cfg *config.Config, opts *options) {
	if opts.owner != "" {
		cfg.Owner = opts.owner
	}
	if opts.repo != "" {
		cfg.Repo = opts.repo
	}
	if opts.repoPath != "" {
		cfg.RepoPath = opts.repoPath
	}
	if opts.fromTag != "" {
		cfg.FromTag = opts.fromTag
	}
	if opts.toTag != "" {
		cfg.ToTag = opts.toTag
	}
	if opts.from != "" {
		cfg.From = opts.from
	}
	if opts.to != "" {
		cfg.To = opts.to
	}
	if opts.max > 0 {
		cfg.MaxPullRequests = opts.max
	}
	if opts.sort != "" {
		cfg.Sort = opts.sort
	}
}
