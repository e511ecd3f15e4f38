package logger

import "go.uber.org/zap"

type Field = zap.Field

// Field constructors, so call sites never import zap directly.
var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int32    = zap.Int32
	Int64    = zap.Int64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
	Any      = zap.Any
	ErrorF   = zap.Error
)

func Component(name string) Field { return zap.String("component", name) }
