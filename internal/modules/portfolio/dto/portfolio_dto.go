package dto

import (
	activityDto "anoa.com/portfoliocms/internal/modules/activity/dto"
	certificationDto "anoa.com/portfoliocms/internal/modules/certification/dto"
	educationDto "anoa.com/portfoliocms/internal/modules/education/dto"
	experienceDto "anoa.com/portfoliocms/internal/modules/experience/dto"
	problemSolvingDto "anoa.com/portfoliocms/internal/modules/problemsolving/dto"
	profileDto "anoa.com/portfoliocms/internal/modules/profile/dto"
	projectDto "anoa.com/portfoliocms/internal/modules/project/dto"
	reviewDto "anoa.com/portfoliocms/internal/modules/review/dto"
	skillDto "anoa.com/portfoliocms/internal/modules/skill/dto"
	socialLinkDto "anoa.com/portfoliocms/internal/modules/sociallink/dto"
)

type PortfolioResponse struct {
	Profile         profileDto.ProfileResponse                 `json:"profile"`
	Skills          []skillDto.SkillResponse                   `json:"skills"`
	Educations      []educationDto.EducationResponse           `json:"educations"`
	WorkExperiences []experienceDto.WorkExperienceResponse     `json:"workExperiences"`
	Projects        []projectDto.ProjectResponse               `json:"projects"`
	Certifications  []certificationDto.CertificationResponse   `json:"certifications"`
	Reviews         []reviewDto.ReviewResponse                 `json:"reviews"`
	SocialLinks     []socialLinkDto.SocialLinkResponse         `json:"socialLinks"`
	Activities      []activityDto.ActivityResponse             `json:"activities"`
	ProblemSolving  []problemSolvingDto.ProblemSolvingResponse `json:"problemSolving"`
}
