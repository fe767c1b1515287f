package models

import (
	"fmt"
	"time"
)

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// ParseRole validates a role string coming off the wire.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// CanAuthor reports whether the role may create banks, examinations and
// schedules.
func (r Role) CanAuthor() bool {
	return r == RoleInstructor || r == RoleAdmin
}

// CanGrade reports whether the role may grade or override submissions.
func (r Role) CanGrade() bool {
	return r == RoleInstructor || r == RoleAdmin
}

type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FullName     string    `bson:"full_name" json:"full_name"`
	Role         Role      `bson:"role" json:"role"`
	BankIDs      []string  `bson:"bank_ids,omitempty" json:"bank_ids,omitempty"`
	CourseIDs    []string  `bson:"course_ids,omitempty" json:"course_ids,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
