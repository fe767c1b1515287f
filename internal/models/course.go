package models

import "time"

type Group struct {
	ID         string   `bson:"id" json:"id"`
	Name       string   `bson:"name" json:"name"`
	StudentIDs []string `bson:"student_ids" json:"student_ids"`
}

type Course struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Description  string    `bson:"description" json:"description"`
	InstructorID string    `bson:"instructor_id" json:"instructor_id"`
	StudentIDs   []string  `bson:"student_ids" json:"student_ids"`
	Groups       []Group   `bson:"groups" json:"groups"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
