package cli

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"archstyles/internal/config"
	"archstyles/internal/server"
	"archstyles/internal/styles"
	"archstyles/pkg/buildinfo"
	"archstyles/pkg/cache"
)

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		backend   string
		redisAddr string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if backend != "" {
				cfg.Cache.Backend = backend
			}
			if redisAddr != "" {
				cfg.Cache.RedisAddr = redisAddr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			pageCache, err := cache.Open(ctx, cfg.Cache.Options())
			if err != nil {
				return fmt.Errorf("page cache: %w", err)
			}
			defer pageCache.Close()
			logger.Debug("page cache ready", "backend", cfg.Cache.Backend)

			handler := server.NewRouter(server.Deps{
				Catalog:        styles.Default(),
				Cache:          cache.NewScoped(pageCache, cacheScope()),
				CacheTTL:       cfg.Cache.TTL,
				Logger:         logger,
				RequestTimeout: cfg.Server.RequestTimeout,
			})
			logger.Info("serving", "url", cfg.PublicURL(), "version", buildinfo.Version)
			printServeInfo(cmd.OutOrStdout(), cfg)
			return server.Run(ctx, cfg.Server, handler, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, or :$PORT)")
	cmd.Flags().StringVar(&backend, "cache", "", "page cache backend: memory, redis or none")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "redis address for the redis cache backend")
	return cmd
}

// cacheScope prefixes page cache keys with the build version. Development
// builds share the version "dev", so each process gets its own scope.
func cacheScope() string {
	version := buildinfo.Version
	if version == "dev" {
		version += "-" + uuid.NewString()
	}
	return "archstyles:" + version + ":"
}

func printServeInfo(w io.Writer, cfg config.Config) {
	fmt.Fprintln(w, StyleTitle.Render("Architectural Styles Explorer"))
	printKeyValue(w, "URL", StyleLink.Render(cfg.PublicURL()))
	printKeyValue(w, "Listen", cfg.Server.Addr)
	printKeyValue(w, "Cache", cfg.Cache.Backend)
	printKeyValue(w, "Version", buildinfo.Version)
}
