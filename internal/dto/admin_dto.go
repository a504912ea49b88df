package dto

type AdminStatsResponse struct {
	TotalUsers    int `json:"total_users"`
	OnlineUsers   int `json:"online_users"`
	AdminUsers    int `json:"admin_users"`
	TotalChats    int `json:"total_chats"`
	PersonalChats int `json:"personal_chats"`
	GroupChats    int `json:"group_chats"`
	TotalMessages int `json:"total_messages"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user admin"`
}

type AdminLogEntry struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Module    string                 `json:"module,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}
