package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"neuropath/internal/config"
	"neuropath/internal/logging"
)

type commandContext struct {
	baseDirFlag   *string
	keywordFlag   *string
	overridesFlag *string
	logLevelFlag  *string
	verboseFlag   *bool

	resolverOnce sync.Once
	resolver     *config.Resolver
	resolverErr  error
}

func newCommandContext(baseDir, keyword, overrides, logLevel *string, verbose *bool) *commandContext {
	return &commandContext{
		baseDirFlag:   baseDir,
		keywordFlag:   keyword,
		overridesFlag: overrides,
		logLevelFlag:  logLevel,
		verboseFlag:   verbose,
	}
}

func (c *commandContext) ensureResolver() (*config.Resolver, error) {
	c.resolverOnce.Do(func() {
		logger, err := logging.New(logging.Options{Level: c.logLevel()})
		if err != nil {
			c.resolverErr = err
			return
		}

		resolver := config.New(nil, logger)
		err = resolver.Initialize(config.InitOptions{
			BaseDir:       c.flagValue(c.baseDirFlag),
			Keyword:       c.flagValue(c.keywordFlag),
			OverridesPath: c.flagValue(c.overridesFlag),
			Verbose:       c.verboseFlag != nil && *c.verboseFlag,
		})
		if err != nil {
			c.resolverErr = err
			return
		}
		c.resolver = resolver
	})
	return c.resolver, c.resolverErr
}

func (c *commandContext) flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.TrimSpace(*flag)
}

func (c *commandContext) logLevel() string {
	if c.logLevelFlag == nil {
		return "info"
	}
	return *c.logLevelFlag
}

func shouldSkipResolve(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipResolve"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
