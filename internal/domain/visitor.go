package domain

import (
	"time"

	"github.com/vmshq/VMS-VisitorService/pkg/types"
)

// VisitorStatus represents the status of a visitor booking
type VisitorStatus string

const (
	StatusPending   VisitorStatus = "pending"
	StatusVerified  VisitorStatus = "verified"
	StatusCompleted VisitorStatus = "completed"
	StatusCancelled VisitorStatus = "cancelled"
	StatusExpired   VisitorStatus = "expired"
)

// VisitorType represents the type of a visitor
type VisitorType string

const (
	TypeProfessional VisitorType = "professional"
	TypeStudent      VisitorType = "student"
)

// VisitorCategory represents the organizational category of a visitor
type VisitorCategory string

const (
	CategoryGovernment VisitorCategory = "government"
	CategoryAcademic   VisitorCategory = "academic"
	CategoryIndustry   VisitorCategory = "industry"
	CategoryOther      VisitorCategory = "other"
)

// VisitPurpose represents the declared purpose of a visit
type VisitPurpose string

const (
	PurposeBusinessMeeting  VisitPurpose = "business_meeting"
	PurposeInterview        VisitPurpose = "interview"
	PurposeDelivery         VisitPurpose = "delivery"
	PurposeMaintenance      VisitPurpose = "maintenance"
	PurposeTraining         VisitPurpose = "training"
	PurposeIFactoryVisit    VisitPurpose = "i_factory_visit"
	PurposeIFactoryTraining VisitPurpose = "i_factory_training"
	PurposeOther            VisitPurpose = "other"
)

// Visitor represents a registered visitor booking in the system
type Visitor struct {
	ID              string // UUID
	Name            string
	Email           string
	Phone           string
	Company         string
	VisitorType     VisitorType
	VisitorCategory VisitorCategory

	Purpose      VisitPurpose
	DepartmentID *int64
	VisitDate    time.Time
	VisitTime    types.TimeString

	HostName  string
	HostEmail string

	Status VisitorStatus
	QRCode string

	CheckedInAt  *time.Time
	CheckedOutAt *time.Time

	Notes string

	// Reschedule tracking
	IsRescheduled     bool
	OriginalVisitDate *time.Time
	OriginalVisitTime *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the visitor occupies slot capacity
func (v *Visitor) IsActive() bool {
	return v.Status == StatusPending || v.Status == StatusVerified
}

// IsQRExpired returns true if the QR code expired (after end of visit day)
func (v *Visitor) IsQRExpired(now time.Time) bool {
	endOfVisitDay := time.Date(
		v.VisitDate.Year(), v.VisitDate.Month(), v.VisitDate.Day(),
		23, 59, 59, 0, now.Location(),
	)
	return now.After(endOfVisitDay)
}

// IsVisitDay returns true if today is the scheduled visit day
func (v *Visitor) IsVisitDay(now time.Time) bool {
	y1, m1, d1 := v.VisitDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ShouldExpire returns true if the visit should be marked as expired
// by the daily sweep: a pending visit whose date has passed
func (v *Visitor) ShouldExpire(now time.Time) bool {
	return v.Status == StatusPending && v.IsQRExpired(now)
}

// ShouldComplete returns true if the daily sweep should close the visit:
// a verified visit that passed the visit day without checkout
func (v *Visitor) ShouldComplete(now time.Time) bool {
	return v.Status == StatusVerified && v.IsQRExpired(now)
}

// CanBeCompleted returns true if the visit can be manually completed
func (v *Visitor) CanBeCompleted() bool {
	return v.Status == StatusPending || v.Status == StatusVerified
}

// CanBeRescheduled returns true if the visit can be moved to another slot
func (v *Visitor) CanBeRescheduled() bool {
	return v.Status == StatusPending || v.Status == StatusVerified
}

// CanBeCancelled returns true if the visit can be cancelled by staff
func (v *Visitor) CanBeCancelled() bool {
	return v.Status == StatusPending || v.Status == StatusVerified
}

// VisitorsFilter фильтр для получения списка посетителей
type VisitorsFilter struct {
	Status       *VisitorStatus // Фильтр по статусу (опционально)
	DepartmentID *int64         // Фильтр по отделу (опционально)
	Purpose      *VisitPurpose  // Фильтр по цели визита (опционально)
	StartDate    *time.Time     // Начало периода по visit_date (опционально)
	EndDate      *time.Time     // Конец периода по visit_date (опционально)
	Limit        int            // 0 = без ограничения
}

// ValidVisitorType возвращает true для допустимого типа посетителя
func ValidVisitorType(t VisitorType) bool {
	return t == TypeProfessional || t == TypeStudent
}

// ValidVisitorCategory возвращает true для допустимой категории
func ValidVisitorCategory(c VisitorCategory) bool {
	switch c {
	case CategoryGovernment, CategoryAcademic, CategoryIndustry, CategoryOther:
		return true
	}
	return false
}

// ValidPurpose возвращает true для допустимой цели визита
func ValidPurpose(p VisitPurpose) bool {
	switch p {
	case PurposeBusinessMeeting, PurposeInterview, PurposeDelivery,
		PurposeMaintenance, PurposeTraining, PurposeIFactoryVisit,
		PurposeIFactoryTraining, PurposeOther:
		return true
	}
	return false
}

// ValidStatus возвращает true для допустимого статуса
func ValidStatus(s VisitorStatus) bool {
	switch s {
	case StatusPending, StatusVerified, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	}
	return false
}
