package specification

import "gorm.io/gorm"

// NotDeleted filters out soft-deleted drones. Drones use an explicit
// is_deleted flag rather than gorm.DeletedAt, matching the fleet schema.
type NotDeleted struct{}

func (s NotDeleted) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByUrgencyLevel struct {
	UrgencyLevel string
}

func (s ByUrgencyLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("urgency_level = ?", s.UrgencyLevel)
}

type ByUrgencyLevels struct {
	UrgencyLevels []string
}

func (s ByUrgencyLevels) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("urgency_level IN ?", s.UrgencyLevels)
}
