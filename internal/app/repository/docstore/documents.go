package docstore

import "go.mongodb.org/mongo-driver/bson/primitive"

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
}

type symptomDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Category primitive.ObjectID `bson:"category"`
	Name     string             `bson:"name"`
}

type causeDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Symptom primitive.ObjectID `bson:"symptom"`
	Causes  []string           `bson:"causes"`
}

type actionDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Symptom primitive.ObjectID `bson:"symptom"`
	Actions []string           `bson:"actions"`
}

type detectionMethodDoc struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Symptom primitive.ObjectID `bson:"symptom"`
	Methods []string           `bson:"methods"`
}
