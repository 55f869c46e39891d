package hooks

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jmateri/mculog/logger"
)

// start anchors Timestamp hooks at process start, the zero point
// embedded consoles conventionally count milliseconds from.
var start = time.Now()

// Timestamp returns a prefix hook that writes the milliseconds elapsed
// since process start, followed by a space.
func Timestamp() logger.Hook {
	return logger.HookFunc(func(out logger.Sink) {
		_, _ = out.WriteString(strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		_ = out.WriteByte(' ')
	})
}

// Literal returns a hook writing fixed text, typically a record
// terminator:
//
//	log.SetSuffix(hooks.Literal(logger.CR))
func Literal(s string) logger.Hook {
	return logger.HookFunc(func(out logger.Sink) {
		_, _ = out.WriteString(s)
	})
}

// Counter returns a hook that increments c once per emitted record.
// Filtered-out calls never reach hooks, so the counter tracks records
// that actually went to the sink. Install it as a suffix to count
// complete records:
//
//	emitted := prometheus.NewCounter(prometheus.CounterOpts{
//		Name: "log_records_total",
//	})
//	log.SetSuffix(hooks.Counter(emitted))
func Counter(c prometheus.Counter) logger.Hook {
	return logger.HookFunc(func(logger.Sink) {
		c.Inc()
	})
}
