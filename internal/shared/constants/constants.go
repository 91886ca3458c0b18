package constants

const (
	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers                   = "users"
	TableActivityTypes           = "activity_types"
	TableActivities              = "activities"
	TableActivityPICs            = "activity_pics"
	TableActivityApprovers       = "activity_approvers"
	TableTasks                   = "tasks"
	TableTaskPICs                = "task_pics"
	TableTaskApprovers           = "task_approvers"
	TableActivityReminders       = "activity_reminders"
	TableTaskReminders           = "task_reminders"
	TableMessageTemplates        = "message_templates"
	TableChannels                = "channels"
	TableNotifications           = "notifications"
	TableNotificationPreferences = "notification_preferences"
	TableMessengerConfigs        = "messenger_configs"
	TableReminderRunLeases       = "reminder_run_leases"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
)
