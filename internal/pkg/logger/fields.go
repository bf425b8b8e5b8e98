package logger

import (
	"time"

	"github.com/piresc/groomer/internal/utils"
	"go.uber.org/zap"
)

// Field keeps callers off the zap import
type Field = zap.Field

func String(key, val string) Field { return zap.String(key, val) }

func Int(key string, val int) Field { return zap.Int(key, val) }

func Int64(key string, val int64) Field { return zap.Int64(key, val) }

func Bool(key string, val bool) Field { return zap.Bool(key, val) }

func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }

// Err logs err under the "error" key
func Err(err error) Field { return zap.Error(err) }

// Phone logs a phone number with everything but the last 4 digits masked.
// Raw numbers, OTP codes and passwords never go through a Field.
func Phone(key, phone string) Field {
	return zap.String(key, utils.MaskPhone(phone))
}
