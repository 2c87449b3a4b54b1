package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Class is a teaching class inside a major.
type Class struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Major        string             `bson:"major" json:"major"`
	EnglishLevel string             `bson:"englishLevel" json:"englishLevel"`
	Batch        string             `bson:"batch" json:"batch"`
}
