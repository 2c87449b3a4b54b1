package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Schedule links a student to a course they are taking.
//
// StudentCode embeds the student's major and enrollment/batch codes as
// substrings (for example "SE15B042"); nothing else in the record
// identifies the student's major or cohort.
type Schedule struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentCode string             `bson:"studentCode" json:"studentCode"`
	Course      string             `bson:"course" json:"course"`
}
