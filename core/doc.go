// Package core defines the shared types used across domainlog.
//
// It provides the Level type for severity filtering, the Message type
// that a formatter builds for every accepted call, the Field type for
// named auxiliary values, and the Clock used to stamp messages.
//
// Levels are totally ordered: DebugLevel < InfoLevel < WarnLevel <
// ErrorLevel < NoneLevel. NoneLevel is only meaningful as a minimum;
// it rejects every call.
//
// Field encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible. The Any field exists as a fallback for arbitrary
// types.
package core
