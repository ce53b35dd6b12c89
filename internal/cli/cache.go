package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/prismview/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the frame and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheStatsCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached frames and artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, ok, err := c.fileCache()
			if err != nil || !ok {
				return err
			}
			count, err := fc.Clear()
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", fc.Dir())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.Config.Cache
			if !isFileBackend(cfg.Backend) {
				printWarning("Cache backend is %s; no local directory", cfg.Backend)
				return nil
			}
			fmt.Println(cfg.Dir)
			return nil
		},
	}
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, ok, err := c.fileCache()
			if err != nil || !ok {
				return err
			}
			entries, size, err := fc.Stats()
			if err != nil {
				return fmt.Errorf("cache stats: %w", err)
			}
			printKeyValue("Directory", fc.Dir())
			printKeyValue("Entries", fmt.Sprint(entries))
			printKeyValue("Size", formatBytes(size))
			printKeyValue("TTL", c.Config.Cache.TTL.String())
			return nil
		},
	}
}

// fileCache opens the configured file cache. ok is false, after a
// warning, when another backend is configured.
func (c *CLI) fileCache() (*cache.FileCache, bool, error) {
	cfg := c.Config.Cache
	if !isFileBackend(cfg.Backend) {
		printWarning("Cache backend is %s; only the file backend can be inspected here", cfg.Backend)
		return nil, false, nil
	}
	fc, err := cache.NewFileCache(cfg.Dir)
	if err != nil {
		return nil, false, fmt.Errorf("open cache: %w", err)
	}
	return fc, true, nil
}

func isFileBackend(b string) bool {
	return b == "" || b == cache.BackendFile
}

// formatBytes renders n with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
