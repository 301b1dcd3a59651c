package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting CyberClicker"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	// DBMaxConnIdleTime closes pooled connections idle this long
	DBMaxConnIdleTime = 30 * time.Minute

	// DBMaxConnLifetime recycles pooled connections after this long
	DBMaxConnLifetime = time.Hour

	// BackendConnectTimeout bounds connecting and migrating at startup
	BackendConnectTimeout = 30 * time.Second
)

const (
	LogMsgBackendReady         = "Storage backend ready"
	ErrMsgUnknownBackend       = "unknown storage backend"
	ErrMsgFailedOpenFileStore  = "failed to open file store"
	ErrMsgFailedConnectDB      = "failed to connect to database"
	ErrMsgFailedMigrate        = "failed to migrate database"
	ErrMsgFailedConnectRedis   = "failed to connect to redis"
	ErrMsgFailedCreateSessions = "failed to create session manager"
)

// =============================================================================
// Event Handlers
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	// ShutdownTimeout bounds the whole graceful shutdown
	ShutdownTimeout = 30 * time.Second
)

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSavingSessions       = "Saving sessions..."
	LogMsgSessionShutdownError = "Session shutdown failed"
	LogMsgClosingBackend       = "Closing storage backend..."
	LogMsgServerStopped        = "Server stopped"
)
