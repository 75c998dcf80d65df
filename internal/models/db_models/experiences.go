package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type WineTrail struct {
	BaseModel
	Name           string `gorm:"uniqueIndex"`
	Description    string
	ExclusivePerks string
	Zone           string

	Stops []TrailStop `gorm:"foreignKey:WineTrailID"`
}

type TrailStop struct {
	BaseModel
	WineTrailID uuid.UUID `gorm:"index"`
	Position    int
	Name        string
	Blurb       string
}

type ShoppingDistrict struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Description string
	Highlights  pq.StringArray `gorm:"type:text[]"`
	Hours       string
	Address     string
	Zone        string
}

type SignatureExperience struct {
	BaseModel
	ExperienceID string `gorm:"uniqueIndex;column:experience_id"`
	Name         string
	Tagline      string
	Description  string
	Duration     string
	Price        string
	BestTime     string
	Rating       string
	Includes     pq.StringArray `gorm:"type:text[]"`
	IsExclusive  bool
}

type RouteTheme struct {
	BaseModel
	Name      string `gorm:"uniqueIndex"`
	ThemeName string
	ThemeIcon string
	Zones     pq.StringArray `gorm:"type:text[]"`

	TrailName        string
	TrailTimeSlot    string
	DistrictName     string
	DistrictTimeSlot string
}
