package models

import "time"

// StatsResponse сводка для панели персонала
type StatsResponse struct {
	Total        int            // Всего записей
	ByStatus     map[string]int // Распределение по статусам
	Today        int            // Визитов сегодня
	ThisMonth    int            // Визитов в текущем месяце
	ByPurpose    map[string]int // Распределение по целям визита
	ByDepartment []DepartmentStat
}

// DepartmentStat визиты по отделу
type DepartmentStat struct {
	DepartmentID   *int64
	DepartmentName string
	Count          int
}

// TrendsResponse ежедневная динамика визитов
type TrendsResponse struct {
	Days  int
	Items []TrendItem
}

// TrendItem число визитов на дату
type TrendItem struct {
	Date  time.Time
	Count int
}
