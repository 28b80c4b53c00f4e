package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonTsoy/jwt-auth-api/internal/article"
	"github.com/AntonTsoy/jwt-auth-api/internal/auth"
	"github.com/AntonTsoy/jwt-auth-api/internal/model"
	"github.com/AntonTsoy/jwt-auth-api/internal/store"
	"github.com/AntonTsoy/jwt-auth-api/internal/token"
	"github.com/AntonTsoy/jwt-auth-api/internal/user"
	"github.com/AntonTsoy/jwt-auth-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	users, err := newUserStore(cfg)
	if err != nil {
		panic(err)
	}
	ledger, err := newLedger(cfg)
	if err != nil {
		panic(err)
	}

	if cfg.SeedDemoData {
		if err := seedDemoUsers(users); err != nil {
			panic(err)
		}
	}

	codec := token.NewCodec(cfg.JWTSecret)
	authService := auth.NewService(users, ledger, codec, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(user.NewService(users))
	articleHandler := article.NewHandler(store.NewMemoryArticleStore())

	router := gin.Default()
	router.Use(auth.Authenticate(users, codec))

	authHandler.Register(router)

	api := router.Group("/api", auth.RequireAuth())
	userHandler.Register(api)
	articleHandler.Register(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	slog.Info("server starting", "addr", cfg.ListenAddr, "user_store", cfg.UserStore, "ledger_store", cfg.LedgerStore)
	if err := router.Run(cfg.ListenAddr); err != nil {
		panic(err)
	}
}

func newUserStore(cfg *config.Config) (store.UserStore, error) {
	if cfg.UserStore == config.StorePostgres {
		db, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresUserStore(db), nil
	}
	return store.NewMemoryUserStore(), nil
}

func newLedger(cfg *config.Config) (store.RefreshTokenStore, error) {
	if cfg.LedgerStore == config.StoreRedis {
		return store.NewRedisRefreshTokenStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	return store.NewMemoryRefreshTokenStore(), nil
}

func seedDemoUsers(users store.UserStore) error {
	demo := []struct {
		email    string
		password string
		role     model.Role
	}{
		{"email-1@gmail.com", "pass1", model.RoleUser},
		{"email-2@gmail.com", "pass2", model.RoleAdmin},
		{"email-3@gmail.com", "pass3", model.RoleUser},
	}

	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		err = users.Create(model.User{
			ID:           uuid.New(),
			Email:        d.email,
			PasswordHash: string(hash),
			Role:         d.role,
		})
		if err != nil && err != model.ErrEmailTaken {
			return err
		}
	}
	return nil
}
