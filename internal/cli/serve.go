package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JustBeyond/packedbubble/internal/api"
	"github.com/JustBeyond/packedbubble/pkg/cache"
	"github.com/JustBeyond/packedbubble/pkg/pipeline"
	"github.com/JustBeyond/packedbubble/pkg/store"
)

// defaultMongoURI is used when --store mongo is selected without a URI.
const defaultMongoURI = "mongodb://localhost:27017"

// serveOpts holds the resolved serve command settings.
type serveOpts struct {
	addr      string
	storeKind string
	mongoURI  string
	mongoDB   string
	redisAddr string
	noCache   bool
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the packedbubble HTTP API server",
		Long: `Run the packedbubble HTTP API server.

The server exposes the chart pipeline over HTTP: stateless layout
computation, chart CRUD backed by the configured store, and cached SVG
delivery. Charts live in memory by default; --store mongo persists them
to MongoDB. With --redis, layouts and artifacts are cached in Redis
instead of on disk.

The server shuts down gracefully on SIGINT/SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.overlayServeConfig(cmd, &opts)
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", api.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&opts.storeKind, "store", "memory", "chart store backend: memory (default), mongo")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", defaultMongoURI, "MongoDB connection URI")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", store.DefaultDatabase, "MongoDB database name")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "Redis address for the layout/artifact cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable layout/artifact caching")

	return cmd
}

// overlayServeConfig applies [server], [mongo], and [redis] config values
// to flags the user did not set explicitly.
func (c *CLI) overlayServeConfig(cmd *cobra.Command, opts *serveOpts) {
	flags := cmd.Flags()

	if !flags.Changed("addr") && c.Config.Server.Addr != "" {
		opts.addr = c.Config.Server.Addr
	}
	if !flags.Changed("mongo-uri") && c.Config.Mongo.URI != "" {
		opts.mongoURI = c.Config.Mongo.URI
	}
	if !flags.Changed("mongo-db") && c.Config.Mongo.Database != "" {
		opts.mongoDB = c.Config.Mongo.Database
	}
	if !flags.Changed("redis") && c.Config.Redis.Addr != "" {
		opts.redisAddr = c.Config.Redis.Addr
	}
}

// runServe assembles the store, cache, and runner, then serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	st, err := c.newStore(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	serveCache, err := c.newServeCache(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	runner := pipeline.NewRunner(serveCache, nil, c.Logger)
	defer runner.Close()

	srv := api.NewServer(api.Options{
		Addr:   opts.addr,
		Store:  st,
		Runner: runner,
		Logger: c.Logger,
	})

	printInfo("Serving on %s", StyleHighlight.Render(opts.addr))
	printDetail("store: %s · cache: %s", opts.storeKind, cacheName(opts))
	printNewline()

	return srv.Start(ctx)
}

// newStore builds the chart store for the selected backend.
func (c *CLI) newStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch opts.storeKind {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:      opts.mongoURI,
			Database: opts.mongoDB,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s (must be 'memory' or 'mongo')", opts.storeKind)
	}
}

// newServeCache builds the layout/artifact cache: Redis when configured,
// otherwise the local file cache.
func (c *CLI) newServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     opts.redisAddr,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		})
	}
	return c.newCache(false)
}

// cacheName describes the active cache backend for the startup banner.
func cacheName(opts serveOpts) string {
	switch {
	case opts.noCache:
		return "off"
	case opts.redisAddr != "":
		return "redis"
	default:
		return "file"
	}
}
