package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jmateri/mculog/logger"
	"github.com/jmateri/mculog/sink"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op writer)
// ---------------------------------------------------------------------------

// newMculogLogger returns a facade logger writing to a discarded sink.
func newMculogLogger() *logger.Logger {
	l := logger.New()
	l.Init(logger.VerboseLevel, sink.Discard, true)
	return l
}

// newZapLogger returns a zap.Logger that writes JSON to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(core)
}

// newSlogLogger returns an slog.Logger that writes text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// ---------------------------------------------------------------------------
// Scenario 1 – plain message, no conversions
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Plain(b *testing.B) {
	b.Run("mculog", func(b *testing.B) {
		l := newMculogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("system check passed")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("system check passed")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("system check passed")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – message with mixed-type values
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_WithValues(b *testing.B) {
	b.Run("mculog", func(b *testing.B) {
		l := newMculogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("sensor %s read %d ok=%t", logger.Str("bme280"),
				logger.Int(2041), logger.Bool(true))
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("sensor read", zap.String("sensor", "bme280"),
				zap.Int("value", 2041), zap.Bool("ok", true))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Error("sensor read", "sensor", "bme280", "value", 2041, "ok", true)
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – filtered-out call (the hot path on quiet systems)
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Filtered(b *testing.B) {
	b.Run("mculog", func(b *testing.B) {
		l := logger.New()
		l.Init(logger.ErrorLevel, sink.Discard, true)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Trace("dropped %d", logger.Int(i))
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(core)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped", zap.Int("i", i))
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped", "i", i)
		}
	})
}
