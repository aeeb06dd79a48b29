// Package logger provides structured logging for listkit built on zerolog.
//
// Collections log their mutation pipeline at debug level; embedding
// applications configure level, format and output through Config or the
// LOG_* environment variables.
package logger
