package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Logins counts successful attendance logins.
	Logins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_logins_total",
		Help: "Successful attendance logins.",
	})

	// LoginRejections counts logins blocked by the duplicate-session rule.
	LoginRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_login_rejections_total",
		Help: "Logins rejected because the session slot was already used.",
	})

	// Logouts counts logout stamps, including overwrites.
	Logouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_logouts_total",
		Help: "Logout timestamps written.",
	})

	// SnapshotRefreshes counts wholesale snapshot reloads.
	SnapshotRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_snapshot_refreshes_total",
		Help: "Full snapshot reloads triggered by change notifications.",
	})

	// StoreErrors counts failed store round-trips.
	StoreErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rollcall_store_errors_total",
		Help: "Errors returned by the backing store.",
	})
)
