package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigMissingInputError
	ConfigInputNotFoundError
	ConfigDriverError

	// Database errors
	DBConnectionError
	DBNotFoundError
	DBNotConnectedError
	DBTableExistsCheckError
	DBUnknownTableError
	DBDropTableError
	DBTransactionError
	DBEmptyDatabaseError

	// Schema errors
	SchemaCreateError

	// Load errors
	LoadMalformedRecordError
	LoadInsertError
	LoadJoinError
	LoadRunMetadataError
	LoadCancelledError

	// Extract errors
	ExtractUnknownRankError
	ExtractQueryError
	ExtractWriteError

	// Inspect errors
	InspectQueryError
)
