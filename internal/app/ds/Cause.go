package ds

// Cause, RecommendedAction and DetectionMethod each hold one ordered list
// per symptom. Lists are stored as JSON text so order survives the round trip.
type Cause struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SymptomID uint     `gorm:"not null;uniqueIndex" json:"symptom_id"`
	Causes    []string `gorm:"type:text;serializer:json" json:"causes"`

	Symptom Symptom `gorm:"foreignKey:SymptomID" json:"-"`
}

type RecommendedAction struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SymptomID uint     `gorm:"not null;uniqueIndex" json:"symptom_id"`
	Actions   []string `gorm:"type:text;serializer:json" json:"actions"`

	Symptom Symptom `gorm:"foreignKey:SymptomID" json:"-"`
}

type DetectionMethod struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	SymptomID uint     `gorm:"not null;uniqueIndex" json:"symptom_id"`
	Methods   []string `gorm:"type:text;serializer:json" json:"methods"`

	Symptom Symptom `gorm:"foreignKey:SymptomID" json:"-"`
}

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&Category{},
		&Symptom{},
		&Cause{},
		&RecommendedAction{},
		&DetectionMethod{},
	}
}
