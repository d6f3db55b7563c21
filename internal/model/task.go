package model

import "time"

// Task categories form a closed set; anything else falls back to Others.
const (
	CategoryPersonalDevelopment = "Personal Development"
	CategoryHobbies             = "Hobbies"
	CategoryCareerDevelopment   = "Career Development"
	CategoryAcademics           = "Academics"
	CategoryOthers              = "Others"
)

// Categories lists every valid task category.
var Categories = []string{
	CategoryPersonalDevelopment,
	CategoryHobbies,
	CategoryCareerDevelopment,
	CategoryAcademics,
	CategoryOthers,
}

// ValidCategory reports whether name is one of the known categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Task represents a recurring habit owned by a single user.
// Tasks are never hard-deleted; IsActive is cleared instead.
type Task struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"index;uniqueIndex:idx_user_task_title"`
	Title         string `gorm:"uniqueIndex:idx_user_task_title"`
	Description   string
	Category      string `gorm:"default:Others"`
	IsActive      bool   `gorm:"default:true"`
	ScheduledTime string // minutes after midnight, free-form; blank when unset
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
