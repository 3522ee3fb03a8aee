package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "Beginner"
	ProficiencyIntermediate Proficiency = "Intermediate"
	ProficiencyAdvanced     Proficiency = "Advanced"
	ProficiencyExpert       Proficiency = "Expert"
)

type Skill struct {
	Base
	Name        string      `gorm:"size:100;not null"`
	Category    *string     `gorm:"size:100"`
	Proficiency Proficiency `gorm:"size:20;not null"`
}

type Education struct {
	Base
	Institute  string     `gorm:"size:200;not null"`
	Department string     `gorm:"size:200;not null"`
	Degree     *string    `gorm:"size:100"`
	CGPA       float64    `gorm:"column:cgpa;not null"`
	Scale      float64    `gorm:"not null"`
	StartDate  time.Time  `gorm:"type:date;not null"`
	EndDate    *time.Time `gorm:"type:date"`
}

type WorkExperience struct {
	Base
	Company        string                      `gorm:"size:200;not null"`
	Role           string                      `gorm:"size:200;not null"`
	Location       *string                     `gorm:"size:100"`
	EmploymentType *string                     `gorm:"size:50"`
	StartDate      time.Time                   `gorm:"type:date;not null"`
	EndDate        *time.Time                  `gorm:"type:date"`
	Descriptions   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
}

type ProjectLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type Project struct {
	Base
	Title        string                           `gorm:"size:200;not null"`
	Description  string                           `gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string]      `gorm:"type:jsonb"`
	Links        datatypes.JSONSlice[ProjectLink] `gorm:"type:jsonb"`
	ImageURL     *string                          `gorm:"type:text"`
	IsFeatured   bool                             `gorm:"default:false"`
}

type Certification struct {
	Base
	Name         string    `gorm:"size:200;not null"`
	Issuer       string    `gorm:"size:200;not null"`
	DateObtained time.Time `gorm:"type:date;not null"`
	CredentialID *string   `gorm:"size:200"`
	URL          *string   `gorm:"type:text"`
}

type Review struct {
	Base
	ReviewerName  string  `gorm:"size:100;not null"`
	ReviewerTitle *string `gorm:"size:100"`
	Company       *string `gorm:"size:100"`
	Rating        int     `gorm:"not null"`
	Comment       string  `gorm:"type:text;not null"`
	AvatarURL     *string `gorm:"type:text"`
}

type SocialLink struct {
	Base
	Platform     string `gorm:"size:50;not null"`
	URL          string `gorm:"type:text;not null"`
	DisplayOrder int    `gorm:"default:0"`
}

type ExtraCurricularActivity struct {
	Base
	Title        string     `gorm:"size:200;not null"`
	Organization string     `gorm:"size:200;not null"`
	Role         *string    `gorm:"size:100"`
	Description  *string    `gorm:"type:text"`
	StartDate    time.Time  `gorm:"type:date;not null"`
	EndDate      *time.Time `gorm:"type:date"`
}

type ProblemSolving struct {
	Base
	Platform    string `gorm:"size:50;not null"`
	Handle      string `gorm:"size:100;not null"`
	ProfileURL  string `gorm:"type:text;not null"`
	SolvedCount int    `gorm:"default:0"`
	Rating      *int
	Rank        *string `gorm:"size:50"`
}

func (ProblemSolving) TableName() string {
	return "problem_solving"
}
