package scheduler

// LogMsgEnqueueFailed is logged when a tick could not be queued
const LogMsgEnqueueFailed = "Scheduled job not enqueued"
