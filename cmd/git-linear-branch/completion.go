package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrbonezy/git-linear-branch/branch"
)

// completePrefixes suggests remembered prefixes for the first argument.
func (a *app) completePrefixes(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	repoRoot, err := a.git.TopLevel(a.dir)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	records, err := a.openStore(repoRoot).List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	branch.SortByLastUsed(records)
	out := make([]string, 0, len(records))
	for _, r := range records {
		if !matchesCompletionPrefix(r.Prefix, toComplete) {
			continue
		}
		out = append(out, r.Prefix+"\t"+r.OriginalTitle)
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveKeepOrder
}

func matchesCompletionPrefix(value string, prefix string) bool {
	if strings.TrimSpace(prefix) == "" {
		return true
	}
	valueLower := strings.ToLower(strings.TrimSpace(value))
	prefixLower := strings.ToLower(strings.TrimSpace(prefix))
	return strings.HasPrefix(valueLower, prefixLower)
}

func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch strings.ToLower(strings.TrimSpace(shell)) {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	default:
		return usageError(root, "unsupported shell "+shell+"; use bash, zsh or fish")
	}
}
