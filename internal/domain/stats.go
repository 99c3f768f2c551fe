package domain

import "time"

// DailyCount количество визитов на конкретную дату (для графика трендов)
type DailyCount struct {
	Date  time.Time
	Count int
}

// DepartmentCount количество визитов по отделу
type DepartmentCount struct {
	DepartmentID   *int64
	DepartmentName string
	Count          int
}
