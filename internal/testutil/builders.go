package testutil

import (
	"fmt"

	"github.com/akyairhashvil/proffy/internal/models"
)

// TeacherBuilder provides fluent API for creating test tutor records.
type TeacherBuilder struct {
	teacher models.Teacher
}

func NewTeacher() *TeacherBuilder {
	return &TeacherBuilder{
		teacher: models.Teacher{
			ID:       1,
			UserID:   1,
			Name:     "Test Proffy",
			Subject:  "Math",
			Cost:     80,
			Bio:      "Teaches things.",
			Whatsapp: "5500000000000",
		},
	}
}

func (b *TeacherBuilder) WithID(id int64) *TeacherBuilder {
	b.teacher.ID = id
	b.teacher.UserID = id
	return b
}

func (b *TeacherBuilder) WithName(name string) *TeacherBuilder {
	b.teacher.Name = name
	return b
}

func (b *TeacherBuilder) WithSubject(subject string) *TeacherBuilder {
	b.teacher.Subject = subject
	return b
}

func (b *TeacherBuilder) WithCost(cost float64) *TeacherBuilder {
	b.teacher.Cost = cost
	return b
}

func (b *TeacherBuilder) WithBio(bio string) *TeacherBuilder {
	b.teacher.Bio = bio
	return b
}

func (b *TeacherBuilder) WithSlot(weekDay, from, to int) *TeacherBuilder {
	b.teacher.Schedule = append(b.teacher.Schedule, models.ScheduleSlot{WeekDay: weekDay, From: from, To: to})
	return b
}

func (b *TeacherBuilder) Build() models.Teacher {
	return b.teacher
}

// Teachers builds n records with ids 1..n.
func Teachers(n int) []models.Teacher {
	out := make([]models.Teacher, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewTeacher().WithID(int64(i)).WithName(fmt.Sprintf("Proffy %d", i)).Build())
	}
	return out
}
