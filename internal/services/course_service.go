// file: internal/services/course_service.go
package services

import (
	"context"
	"strings"

	"jobtrust/internal/models"
	"jobtrust/internal/repositories"
)

type courseService struct {
	repo repositories.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(repo repositories.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

// ListCourses returns courses in the category, best rated first. An empty
// category lists everything.
func (s *courseService) ListCourses(ctx context.Context, category string) ([]*models.Course, error) {
	courses, err := s.repo.ListCourses(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, NewInternalError("failed to list courses", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}
