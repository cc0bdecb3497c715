package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mrbonezy/git-linear-branch/branch"
	"github.com/mrbonezy/git-linear-branch/ui"
)

const checkoutSpinnerDelay = 150 * time.Millisecond

var errCheckoutFailed = errors.New("failed to checkout branch")

func (a *app) runDefault(opts options, args []string) error {
	if opts.delete || (len(args) > 0 && args[0] == "--delete") {
		return errNotImplemented
	}

	repoRoot, err := a.git.TopLevel(a.dir)
	if err != nil {
		return err
	}
	s := a.openStore(repoRoot)
	a.log.WithField("path", repoRoot).Debug("opened branch store")

	if opts.pick {
		return a.runPick(s, repoRoot, args, opts.dryRun)
	}
	if len(args) == 0 {
		return a.runList(s)
	}
	record, err := branch.Resolve(args, s, a.now())
	if err != nil {
		return err
	}
	return a.createBranch(s, repoRoot, record, opts.dryRun)
}

func (a *app) runList(s branch.Store) error {
	records, err := s.List()
	if err != nil {
		return err
	}
	branch.SortByLastUsed(records)
	fmt.Fprint(a.out, ui.RenderBranchList(branchRows(records), ui.NewStyles(a.out, colorEnabled(a.cfg))))
	return nil
}

func (a *app) runPick(s branch.Store, repoRoot string, words []string, dryRun bool) error {
	records, err := s.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return branch.ErrNoBranchesSaved
	}
	branch.SortByLastUsed(records)
	prefix, err := a.pick(branchRows(records))
	if err != nil {
		return err
	}
	record, err := branch.ResolveWithPrefix(prefix, words, s, a.now())
	if err != nil {
		return err
	}
	return a.createBranch(s, repoRoot, record, dryRun)
}

// createBranch checks out record.Name and, only if git succeeded, records it.
func (a *app) createBranch(s branch.Store, repoRoot string, record branch.Record, dryRun bool) error {
	entry := a.log.WithFields(logrus.Fields{"prefix": record.Prefix, "name": record.Name})
	if dryRun {
		entry.Debug("dry run, not creating branch")
		fmt.Fprintln(a.out, record.Name)
		return nil
	}

	var result checkoutResult
	err := runStep(a.errOut, "Creating "+record.Name, checkoutSpinnerDelay, func() error {
		var err error
		result, err = a.git.CheckoutNewBranch(repoRoot, record.Name)
		return err
	})
	if out := result.Stdout; strings.TrimSpace(out) != "" {
		fmt.Fprint(a.out, out)
	}
	if errOut := result.Stderr; strings.TrimSpace(errOut) != "" {
		fmt.Fprint(a.errOut, errOut)
	}
	if err != nil {
		return err
	}
	if !result.OK {
		entry.Debug("git checkout failed, store left unchanged")
		return fmt.Errorf("%w %s", errCheckoutFailed, record.Name)
	}

	if err := s.Upsert(record); err != nil {
		return err
	}
	retention := a.cfg.Retention
	if retention <= 0 {
		retention = branch.Retention
	}
	if err := s.Trim(retention); err != nil {
		return err
	}
	entry.WithField("retention", retention).Debug("recorded branch")
	return nil
}

func branchRows(records []branch.Record) []ui.BranchRow {
	rows := make([]ui.BranchRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ui.BranchRow{Prefix: r.Prefix, Title: r.OriginalTitle})
	}
	return rows
}
