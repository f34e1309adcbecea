// Command cstmcp serves the studio automation tool suite over MCP. It
// speaks JSON-RPC to agents on stdio or HTTP and forwards engine calls to
// the bridge sidecar that owns the studio COM connection.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/redis/go-redis/v9"

	"github.com/hermes-rf/cstmcp/config"
	"github.com/hermes-rf/cstmcp/engine/remote"
	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/mcp/transport"
	"github.com/hermes-rf/cstmcp/mcp/transport/httptransport"
	"github.com/hermes-rf/cstmcp/mcp/transport/stdiotransport"
	"github.com/hermes-rf/cstmcp/resultcache"
	"github.com/hermes-rf/cstmcp/toolsuite"
)

var logger = xlog.NewPackageLogger("github.com/hermes-rf/cstmcp", "cstmcp")

func main() {
	cfgFile := flag.String("cfg", "", "configuration file")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	// stdout belongs to the protocol stream; logs go to stderr
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))
	if *debug {
		xlog.SetGlobalLogLevel(xlog.DEBUG)
	} else {
		xlog.SetGlobalLogLevel(xlog.ERROR)
	}

	if err := run(*cfgFile); err != nil {
		logger.KV(xlog.ERROR, "err", err.Error())
		os.Exit(1)
	}
}

func run(cfgFile string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	if cfg.Bridge.URL == "" {
		return errors.New("bridge URL is required")
	}

	client := remote.NewClient(cfg.Bridge.URL)
	if cfg.Bridge.AuthToken != "" {
		client = client.WithAuthToken(cfg.Bridge.AuthToken)
	}
	if cfg.Bridge.ProjectFile != "" {
		if err := client.OpenFile(context.Background(), cfg.Bridge.ProjectFile); err != nil {
			return errors.WithMessagef(err, "failed to open project %s", cfg.Bridge.ProjectFile)
		}
	}

	opts, err := suiteOptions(cfg)
	if err != nil {
		return err
	}
	suite := toolsuite.NewSuite(client.Project(), opts...)

	tr, err := serverTransport(cfg)
	if err != nil {
		return err
	}

	server := mcp.NewServer(tr)
	if err := suite.RegisterAll(server); err != nil {
		return err
	}
	if err := suite.RegisterResources(server); err != nil {
		return err
	}

	return server.Serve()
}

func suiteOptions(cfg *config.Config) ([]toolsuite.Option, error) {
	var opts []toolsuite.Option

	switch cfg.Cache.Backend {
	case "":
	case "memory":
		opts = append(opts, toolsuite.WithResultCache(resultcache.NewMemoryCache(), "memory"))
	case "redis":
		ropts, err := redis.ParseURL(cfg.Cache.RedisURL)
		if err != nil {
			return nil, errors.WithMessage(err, "invalid redis URL")
		}
		var ttl time.Duration
		if cfg.Cache.TTL != "" {
			ttl, err = time.ParseDuration(cfg.Cache.TTL)
			if err != nil {
				return nil, errors.WithMessage(err, "invalid cache TTL")
			}
		}
		cache := resultcache.NewRedisCache(redis.NewClient(ropts), cfg.Cache.Prefix, ttl)
		opts = append(opts, toolsuite.WithResultCache(cache, "redis"))
	default:
		return nil, errors.Newf("unsupported cache backend: %s", cfg.Cache.Backend)
	}

	if cfg.MaterialsDir != "" {
		opts = append(opts, toolsuite.WithMaterialsDir(cfg.MaterialsDir))
	}
	return opts, nil
}

func serverTransport(cfg *config.Config) (transport.Transport, error) {
	switch cfg.Server.Transport {
	case "", "stdio":
		return stdiotransport.New(), nil
	case "http":
		tr := httptransport.NewHTTPTransport("/mcp")
		if cfg.Server.ListenAddr != "" {
			tr = tr.WithAddr(cfg.Server.ListenAddr)
		}
		return tr, nil
	default:
		return nil, errors.Newf("unsupported transport: %s", cfg.Server.Transport)
	}
}
