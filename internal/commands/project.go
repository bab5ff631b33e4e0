package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ledgerloom-dev/ledgerloom/internal/config"
	"github.com/ledgerloom-dev/ledgerloom/internal/gitops"
	"github.com/ledgerloom-dev/ledgerloom/internal/logger"
	"github.com/ledgerloom-dev/ledgerloom/internal/rulelog"
	"github.com/ledgerloom-dev/ledgerloom/internal/rules"
)

// project bundles everything a command needs from the project directory.
type project struct {
	root string
	cfg  *config.Config
	svc  *rules.Service
	log  zerolog.Logger
}

// openProject resolves the --dir flag and loads config and ruleset.
func openProject(cmd *cobra.Command) (*project, error) {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, err
	}

	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("not a ledgerloom project (run ledgerloom init): %w", err)
	}

	svc, err := rules.Load(filepath.Join(root, cfg.Project.Rules))
	if err != nil {
		return nil, err
	}

	return &project{
		root: root,
		cfg:  cfg,
		svc:  svc,
		log:  logger.New(verbose),
	}, nil
}

// recordChanges appends mutation entries to the rule log and, when enabled,
// commits the rules and logs directories.
func (p *project) recordChanges(message string, entries []rulelog.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if entries[i].Timestamp.IsZero() {
			entries[i].Timestamp = time.Now().UTC()
		}
	}
	if err := rulelog.Append(p.root, entries); err != nil {
		return err
	}

	if !p.cfg.Git.AutoCommit || !gitops.IsRepo(p.root) {
		return nil
	}
	hash, err := gitops.CommitPaths(p.root, message, p.cfg.Git.AuthorName, p.cfg.Git.AuthorEmail,
		filepath.Dir(p.cfg.Project.Rules), "logs")
	if err != nil {
		return fmt.Errorf("committing rules: %w", err)
	}
	p.log.Debug().Str("commit", hash).Msg("committed ruleset change")
	return nil
}
