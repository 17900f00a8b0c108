package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/typecache"
)

type ZapLogger struct{ L *zap.Logger }

var _ typecache.Logger = ZapLogger{}

func (z ZapLogger) Debug(msg string, f typecache.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f typecache.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f typecache.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f typecache.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f typecache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
