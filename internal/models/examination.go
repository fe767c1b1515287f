package models

import "time"

type Examination struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	InstructorID string     `bson:"instructor_id" json:"instructor_id"`
	Title        string     `bson:"title" json:"title"`
	Description  string     `bson:"description" json:"description"`
	Categories   []string   `bson:"categories" json:"categories"`
	Questions    []Question `bson:"questions" json:"questions"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `bson:"updated_at" json:"updated_at"`
}
