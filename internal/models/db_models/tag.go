package db_models

const (
	TagKindCuisine = "cuisine"
	TagKindVibe    = "vibe"
)

type Tag struct {
	BaseModel
	Kind string `gorm:"not null"`
	Name string `gorm:"not null"`
	Slug string `gorm:"not null"`

	Locations []Location `gorm:"many2many:location_tags"`
}

func ValidTagKind(kind string) bool {
	return kind == TagKindCuisine || kind == TagKindVibe
}
