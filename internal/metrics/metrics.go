package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jwtauth_login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"status"})

	TokenRefreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jwtauth_token_refreshes_total",
		Help: "Total number of refresh token redemptions",
	}, []string{"status"})

	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jwtauth_users_created_total",
		Help: "Total number of users created",
	})
)
