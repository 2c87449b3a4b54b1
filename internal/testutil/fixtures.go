package testutil

import (
	"context"
	"testing"

	"github.com/dalemusser/academicdash/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

func (f *Fixtures) insert(ctx context.Context, coll string, doc any) {
	f.t.Helper()
	if _, err := f.db.Collection(coll).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to insert test %s: %v", coll, err)
	}
}

// CreateCourse creates one course result.
func (f *Fixtures) CreateCourse(ctx context.Context, name, major string, enrollment int, score float64) models.Course {
	f.t.Helper()
	c := models.Course{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Major:      major,
		Enrollment: enrollment,
		Score:      score,
	}
	f.insert(ctx, "courses", c)
	return c
}

// CreateClass creates a class in the given major.
func (f *Fixtures) CreateClass(ctx context.Context, major, englishLevel, batch string) models.Class {
	f.t.Helper()
	c := models.Class{
		ID:           primitive.NewObjectID(),
		Major:        major,
		EnglishLevel: englishLevel,
		Batch:        batch,
	}
	f.insert(ctx, "classes", c)
	return c
}

// CreateMajor creates a major.
func (f *Fixtures) CreateMajor(ctx context.Context, name string) models.Major {
	f.t.Helper()
	m := models.Major{ID: primitive.NewObjectID(), Name: name}
	f.insert(ctx, "majors", m)
	return m
}

// CreateSchedule creates a schedule linking a student code to a course.
func (f *Fixtures) CreateSchedule(ctx context.Context, studentCode, course string) models.Schedule {
	f.t.Helper()
	s := models.Schedule{
		ID:          primitive.NewObjectID(),
		StudentCode: studentCode,
		Course:      course,
	}
	f.insert(ctx, "schedules", s)
	return s
}

// CreateReport creates a report line.
func (f *Fixtures) CreateReport(ctx context.Context, version, year, major, semester, course string) models.Report {
	f.t.Helper()
	r := models.Report{
		ID:       primitive.NewObjectID(),
		Version:  version,
		Year:     year,
		Major:    major,
		Semester: semester,
		Course:   course,
	}
	f.insert(ctx, "reports", r)
	return r
}
