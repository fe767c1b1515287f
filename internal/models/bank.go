package models

import "time"

// MaxSubBankDepth is the deepest level a sub-bank may live at.
// The bank itself is depth 1, its direct children depth 2, and so on.
const MaxSubBankDepth = 3

// SubBank is a recursive folder node inside a bank. The whole tree is
// owned by its Bank document and persisted as one aggregate.
type SubBank struct {
	ID       string    `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	ParentID string    `bson:"parent_id,omitempty" json:"parent_id,omitempty"`
	ExamIDs  []string  `bson:"exam_ids" json:"exam_ids"`
	SubBanks []SubBank `bson:"sub_banks" json:"sub_banks"`
}

type Bank struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Name         string    `bson:"name" json:"name"`
	InstructorID string    `bson:"instructor_id" json:"instructor_id"`
	ExamIDs      []string  `bson:"exam_ids" json:"exam_ids"`
	SubBanks     []SubBank `bson:"sub_banks" json:"sub_banks"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
