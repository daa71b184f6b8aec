package models

// DashboardStats - сводка для панели мониторинга, не хранится
type DashboardStats struct {
	TodayCount      int `json:"today_count"`
	AvgResponseTime int `json:"avg_response_time"`
	ActiveCount     int `json:"active_count"`
}
