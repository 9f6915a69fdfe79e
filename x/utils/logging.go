/*
Package utils holds decorators shared by every handler stack: panic
recovery, per transaction savepoints and result logging.
*/
package utils

import (
	"time"

	"github.com/iov-one/soulbound"
	"github.com/iov-one/soulbound/errors"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ soulbound.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Checker) (*soulbound.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx soulbound.Context, store soulbound.KVStore, tx soulbound.Tx, next soulbound.Deliverer) (*soulbound.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	var tags []interface{}
	if err == nil {
		resLog = res.Log
		for _, t := range res.Tags {
			tags = append(tags, t.Key, t.Value)
		}
	}
	logDuration(ctx, start, resLog, err, false, tags...)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx soulbound.Context, start time.Time, msg string, err error, lowPrio bool, keyvals ...interface{}) {
	delta := time.Since(start)
	logger := soulbound.GetLogger(ctx).With("duration", delta/time.Microsecond)

	if err != nil {
		logger = logger.With("err", err, "code", errors.Code(err))
	}

	// Message can be empty, the entry still carries the duration and
	// result tags.
	switch {
	case err != nil && lowPrio:
		logger.Info(msg)
	case err != nil:
		logger.Error(msg)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg, keyvals...)
	}
}
