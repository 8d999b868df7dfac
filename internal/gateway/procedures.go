package gateway

// Stored procedures reachable from the application.
const (
	ProcRegisterUser        = "registrar_usuario"
	ProcLoginUser           = "login_usuario"
	ProcListUsers           = "get_all_users_admin"
	ProcUpdateUser          = "actualizar_usuario_admin"
	ProcDeleteUser          = "eliminar_usuario_admin"
	ProcListStatistics      = "get_statistics_admin"
	ProcInsertContact       = "insert_contact_message"
	ProcListContactMessages = "get_contact_messages_admin"
	ProcUpdateMessageStatus = "update_contact_message_status_admin"
	ProcListLogEntries      = "sp_get_log_entries"
	ProcGlobalLeaderboard   = "get_global_leaderboard"
	ProcUserScore           = "get_user_score"
)
