package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PickupsHandledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_pickups_handled_total",
		Help: "Total number of orders successfully marked as picked up.",
	})

	ReportTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlocker_report_transitions_total",
		Help: "Total number of error report transitions applied, by action.",
	},
		[]string{"action"},
	)

	OrdersDepositedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_orders_deposited_total",
		Help: "Total number of orders deposited into lockers.",
	})

	LockersDedupedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_lockers_deduped_total",
		Help: "Total number of duplicate locker records removed.",
	})

	DeliveryInfosCleanedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlocker_delivery_infos_cleaned_total",
		Help: "Total number of delivery-info staging records cleaned up, by rule.",
	},
		[]string{"rule"},
	)

	NotificationsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_notifications_saved_total",
		Help: "Total number of notifications persisted.",
	})

	AccountsLockedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartlocker_accounts_locked_total",
		Help: "Total number of accounts deactivated by the inactivity sweep.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartlocker_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	LockerCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smartlocker_locker_cache_items",
		Help: "Current number of items in the locker cache.",
	})
)
