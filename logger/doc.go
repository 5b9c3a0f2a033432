// Package logger is the public API of domainlog. Most users only need
// to import this package.
//
// Every call carries a level and a domain, a free-form label such as
// "db" or "http". A Logger emits a call only when the level is at or
// above its minimum (NoneLevel disables everything) and, if a domain
// set was configured, the domain is in it. Accepted calls are turned
// into a core.Message by the formatter and handed to the sink together
// with the call's auxiliary values. Rejected calls never reach either.
//
// A Logger is immutable after construction; configuration is given
// once through options:
//
//	log := logger.New(
//	    logger.WithLevel(logger.WarnLevel),
//	    logger.WithDomains("db", "http"),
//	)
//	log.Warn("db", "slow query", logger.Duration("took", d))
//
// The package also keeps one process-wide Logger. GetInstance creates
// it on first use, later options are ignored, and ResetInstance drops
// it so the next GetInstance starts over. The package-level functions
// Info, Warn, Error, Debug and Log delegate to it:
//
//	logger.Info("startup", "ready", logger.Int("port", 8080))
//
// Delivery is synchronous. Errors from the sink are returned to the
// caller; panics from a custom formatter or sink are not recovered.
package logger
