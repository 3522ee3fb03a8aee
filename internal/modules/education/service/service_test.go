package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/portfoliocms/internal/modules/education/dto"
	"anoa.com/portfoliocms/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidateEducation(t *testing.T) {
	start := time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(4, 0, 0)
	before := start.AddDate(-1, 0, 0)

	tests := []struct {
		name    string
		in      dto.EducationInput
		wantErr bool
	}{
		{"valid finished", dto.EducationInput{CGPA: 3.6, Scale: 4, StartDate: start, EndDate: &end}, false},
		{"valid ongoing", dto.EducationInput{CGPA: 3.1, Scale: 4, StartDate: start}, false},
		{"cgpa above scale", dto.EducationInput{CGPA: 4.2, Scale: 4, StartDate: start}, true},
		{"end before start", dto.EducationInput{CGPA: 3, Scale: 4, StartDate: start, EndDate: &before}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEducation(context.Background(), uuid.New(), nil, tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
