package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_signups_total",
		Help: "Signup requests that issued a confirmation code.",
	})

	CodesIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_confirmation_codes_issued_total",
		Help: "Confirmation codes minted, including re-signup rotations.",
	})

	TokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_tokens_issued_total",
		Help: "Access tokens minted from valid confirmation codes.",
	})

	PermissionDenials = promauto.NewCounter(prometheus.CounterOpts{
		Name: "permission_denials_total",
		Help: "Requests rejected by the permission decision table.",
	})
)
