package logger

import "go.uber.org/zap"

// Campos padronizados usados pelas camadas HTTP e de serviço.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Addr(v string) zap.Field      { return zap.String("addr", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

// Domain identifica a coleção (imobiliaria, loja, blog).
func Domain(v string) zap.Field { return zap.String("domain", v) }
func UserID(v string) zap.Field { return zap.String("user_id", v) }

// Layer indica a camada (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

// Op indica a operação corrente.
func Op(v string) zap.Field { return zap.String("op", v) }

func Err(err error) zap.Field         { return zap.Error(err) }
func Int(key string, v int) zap.Field { return zap.Int(key, v) }
func Count(v int) zap.Field           { return zap.Int("count", v) }
