package models

// Stats сводка для панели администратора
type Stats struct {
	Publications int `json:"publications"`
	Albums       int `json:"albums"`
	Reviews      int `json:"reviews"`
	Messages     int `json:"messages"`
	TotalViews   int `json:"totalViews"`
}
