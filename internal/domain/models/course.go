package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is one student's result in one course, as stored in the
// courses collection. Enrollment is the cohort (intake year number).
type Course struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Major      string             `bson:"major" json:"major"`
	Enrollment int                `bson:"enrollment" json:"enrollment"`
	Score      float64            `bson:"score" json:"score"`
}
