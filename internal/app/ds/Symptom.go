package ds

type Symptom struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CategoryID uint   `gorm:"not null;index" json:"category_id"`
	Name       string `gorm:"type:varchar(200);uniqueIndex;not null" json:"name"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}
