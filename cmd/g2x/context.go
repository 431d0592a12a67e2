package main

import (
	"errors"
	"fmt"

	internal "github.com/ZanzyTHEbar/g2x/g2x"
	"github.com/ZanzyTHEbar/g2x/g2x/config"
	"github.com/ZanzyTHEbar/g2x/g2x/indexing"
	"github.com/ZanzyTHEbar/g2x/g2x/resolve"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var errNoListing = errors.New("no listing given: use --listing or listing.path in the config")

// commandContext carries flag values and the lazily loaded config shared by
// every subcommand.
type commandContext struct {
	configFlag    string
	listingFlag   string
	strategyFlag  string
	thresholdFlag float64
	workersFlag   int
	ignoreFlag    []string
	plainFlag     bool
	verboseFlag   bool

	cfg *config.Config
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, err := config.LoadConfig(c.configFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("listing") {
		cfg.Listing.Path = c.listingFlag
	}
	if flags.Changed("strategy") {
		cfg.Resolver.Strategy = c.strategyFlag
	}
	if flags.Changed("threshold") {
		cfg.Resolver.Threshold = c.thresholdFlag
	}
	if flags.Changed("workers") {
		cfg.Batch.Workers = c.workersFlag
	}
	if flags.Changed("ignore") {
		cfg.Listing.Ignore = c.ignoreFlag
	}
	if flags.Changed("plain") {
		cfg.Resolver.Plain = c.plainFlag
	}
	if c.verboseFlag {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) logger() zerolog.Logger {
	if c.cfg == nil {
		return internal.GetLevelLogger("info")
	}
	return internal.GetLevelLogger(c.cfg.Log.Level)
}

func (c *commandContext) loadIndex() (*indexing.FileIndex, error) {
	if c.cfg.Listing.Path == "" {
		return nil, errNoListing
	}
	entries, err := indexing.ReadListing(c.cfg.Listing.Path, c.cfg.Listing.Ignore)
	if err != nil {
		return nil, err
	}
	idx := indexing.BuildFileIndex(entries)

	log := c.logger()
	log.Debug().
		Str("listing", c.cfg.Listing.Path).
		Int("entries", idx.Len()).
		Msg("Index loaded")
	return idx, nil
}

func (c *commandContext) resolver() *resolve.Resolver {
	return resolve.NewResolver(c.cfg.Resolver.Options(), c.logger())
}

func (c *commandContext) strategy() resolve.Strategy {
	return c.cfg.Resolver.FuzzyStrategy()
}

func formatScore(m resolve.Match) string {
	if !m.Resolved() {
		return "-"
	}
	return fmt.Sprintf("%.3f", m.Score)
}
