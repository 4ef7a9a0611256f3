package domain

import "time"

// DashboardViewLog é o registro de auditoria de uma consulta ao dashboard
type DashboardViewLog struct {
	Name     string
	User     string
	ViewedAt time.Time
	Year     int
	Company  string
	Filters  map[string]any
}
