package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is one imported academic report line. Version identifies the
// import the line belongs to.
type Report struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Version  string             `bson:"version" json:"version"`
	Year     string             `bson:"year" json:"year"`
	Major    string             `bson:"major" json:"major"`
	Semester string             `bson:"semester" json:"semester"`
	Course   string             `bson:"course" json:"course"`
}
