package content

import "time"

// SeedDemoContent loads the demo writer panel collections.
func (s *Store) SeedDemoContent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.courses = append(s.courses,
		Course{
			ID:          "1",
			Title:       "AWS Cloud Practitioner",
			Description: "Foundational AWS course for beginners",
			Category:    "Cloud",
			Lessons: []CourseLesson{
				{ID: "l1", Title: "Introduction to AWS", Order: 1},
				{ID: "l2", Title: "EC2 Instances", Order: 2},
				{ID: "l3", Title: "S3 Storage", Order: 3},
			},
			Status:    StatusPublished,
			CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		Course{
			ID:          "2",
			Title:       "DevOps Fundamentals",
			Description: "Complete DevOps fundamentals course",
			Category:    "DevOps",
			Lessons: []CourseLesson{
				{ID: "l4", Title: "CI/CD Pipelines", Order: 1},
				{ID: "l5", Title: "Docker Basics", Order: 2},
			},
			Status:    StatusPendingApproval,
			CreatedAt: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 3, 19, 0, 0, 0, 0, time.UTC),
		},
	)
	s.lessons = append(s.lessons,
		Lesson{
			ID:    "1",
			Title: "Introduction to AWS",
			Sections: []Section{
				{ID: "s1", Type: SectionText, Content: "AWS is the leading public cloud platform.", Order: 1},
				{ID: "s2", Type: SectionCode, Content: "aws configure", Order: 2},
			},
			Status:    StatusPublished,
			CreatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		},
	)
	s.labs = append(s.labs,
		Lab{
			ID:            "1",
			Title:         "AWS EC2 Deployment Lab",
			Description:   "Step-by-step guide for deploying applications on EC2",
			SkillLevel:    SkillIntermediate,
			EstimatedTime: 90,
			Format:        FormatManual,
			Content:       "Provision an EC2 instance and deploy the sample app.",
			Status:        StatusPendingApproval,
			CreatedAt:     time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		},
		Lab{
			ID:            "2",
			Title:         "Kubernetes Introduction",
			Description:   "Introduction to Kubernetes concepts",
			SkillLevel:    SkillBeginner,
			EstimatedTime: 60,
			Format:        FormatVideo,
			Content:       "Tour of pods, deployments and services.",
			Status:        StatusApproved,
			CreatedAt:     time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			UpdatedAt:     time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		},
	)
}
