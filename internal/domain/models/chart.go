package models

// Chart rows returned by the dashboard endpoints. They mirror the
// documents produced by a single $group stage, so ID holds whatever type
// the grouped field has in storage (string, int, or null).

// GroupKey is a distinct value of one field.
type GroupKey struct {
	ID any `bson:"_id" json:"_id"`
}

// GroupCount is a distinct value and the number of documents holding it.
type GroupCount struct {
	ID    any   `bson:"_id" json:"_id"`
	Count int64 `bson:"count" json:"count"`
}

// GroupAvg is a distinct value and the average score of its documents.
// Avg is nil when no document in the group has a numeric score.
type GroupAvg struct {
	ID  any      `bson:"_id" json:"_id"`
	Avg *float64 `bson:"avg" json:"avg"`
}

// CourseChartRow is one bar of the new-chart endpoint: for a course
// group, how many matching students take it out of all matching students.
type CourseChartRow struct {
	Group               any `json:"group"`
	TotalStudentLearned int `json:"totalStudentLearned"`
	TotalStudent        int `json:"totalStudent"`
}
