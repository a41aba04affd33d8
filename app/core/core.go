package core

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/seriousplay/MegaSpace/app/core/srv"
	"github.com/seriousplay/MegaSpace/app/store/sqlstore"
	"github.com/seriousplay/MegaSpace/pkg/auth"
	"github.com/seriousplay/MegaSpace/pkg/cache"
	"github.com/seriousplay/MegaSpace/pkg/types"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	cache      types.Cache
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics *Metrics
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28,   //days
				Compress:   true, // disabled by default
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("megaspace", "core"),
		httpEngine: gin.New(),
	}

	// setup store
	setupSqlStore(core)

	resolver := setupResolver(cfg.Identity)
	if cfg.Redis.Addr != "" {
		core.cache = cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		resolver = auth.NewCachedResolver(resolver, core.cache)
	}

	core.srv = srv.SetupSrvs(
		srv.ApplyAI(cfg.AI),
		srv.ApplyAuth(resolver),
	)

	return core
}

func setupResolver(cfg auth.IdentityServiceConfig) auth.Resolver {
	if cfg.Mode == auth.MODE_JWT {
		publicKey, err := os.ReadFile(cfg.PublicKeyPath)
		if err != nil {
			panic(err)
		}
		return auth.NewJWTResolver(publicKey)
	}
	return auth.NewHTTPResolver(cfg)
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	// 执行数据库表初始化
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Cache() types.Cache {
	return s.cache
}
