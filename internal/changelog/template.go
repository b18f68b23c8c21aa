package changelog

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/clintrovert/prnotes/pkg/types"
)

// placeholderPattern matches template placeholders such as ${{TITLE}} or
// ${{MERGED_AT}}.
var placeholderPattern = regexp.MustCompile(`\$\{\{([A-Z_]+)\}\}`)

// FillTemplate replaces every ${{NAME}} placeholder in the template with the
// matching property of the pull request.
func FillTemplate(logger *zap.Logger, template string, pr *types.PullRequestInfo) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		return RetrieveProperty(logger, pr, propertyName(name), "template placeholder "+match)
	})
}

// Build renders one template line per pull request.
func Build(logger *zap.Logger, prs []*types.PullRequestInfo, template string) string {
	lines := make([]string, 0, len(prs))
	for _, pr := range prs {
		lines = append(lines, FillTemplate(logger, template, pr))
	}
	return strings.Join(lines, "\n")
}

// propertyName converts a placeholder name like MERGED_AT into the property
// name mergedAt.
func propertyName(placeholder string) string {
	if placeholder == "URL" {
		return "htmlURL"
	}
	parts := strings.Split(strings.ToLower(placeholder), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}
