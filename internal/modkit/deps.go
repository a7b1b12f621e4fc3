package modkit

import (
	"github.com/prometheus/client_golang/prometheus"

	"marketwatch/internal/modkit/repokit"
	"marketwatch/internal/platform/config"
	"marketwatch/internal/platform/logger"
	"marketwatch/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// PG and CH stay nil when the store is not configured, modules degrade around that
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
	// Metrics is where modules register collectors, nil keeps them unregistered
	Metrics prometheus.Registerer
}
