package parcel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "packages_created_total",
			Help: "Total number of booked packages",
		},
	)

	CapacityRejectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "package_capacity_rejections_total",
			Help: "Total number of bookings rejected by the journey capacity check",
		},
	)

	StatusTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "package_status_transitions_total",
			Help: "Total number of package status changes by target status",
		},
		[]string{"status"},
	)
)
