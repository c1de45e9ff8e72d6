package events

import "github.com/atomicstack/dragmenu/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Seed(source string, entries int) {
	logging.Trace("app.seed", map[string]interface{}{"source": source, "entries": entries})
}

func (AppTracer) MetricsListen(addr string) {
	logging.Trace("app.metrics.listen", map[string]interface{}{"addr": addr})
}
