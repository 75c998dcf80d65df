package db_models

// Business is one row of the flat catalog: wineries, restaurants, activities
// and shops share the table, discriminated by Collection.
type Business struct {
	BaseModel
	Name        string `gorm:"uniqueIndex"`
	Collection  string `gorm:"index"`
	Category    string
	Description string
	Location    string
	Address     string
	Phone       string
	Hours       string
	Price       string
	Rating      string
	Zone        string `gorm:"index"`

	HasBreakfast    bool
	IsGrazeFallback bool
}
