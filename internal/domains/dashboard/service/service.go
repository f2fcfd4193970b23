package service

import (
	"context"
	"fmt"

	"qbrain-backend/internal/domains/dashboard/model"
)

// CountFunc đếm document của một collection; status rỗng = tất cả
type CountFunc func(ctx context.Context, status string) (int64, error)

// Counters gom các hàm đếm của từng domain
type Counters struct {
	TeamMembers  func(ctx context.Context) (int64, error)
	Achievements func(ctx context.Context) (int64, error)
	Applications CountFunc
	Messages     CountFunc
	BlogPosts    CountFunc
}

// Statuses là giá trị status dùng để đếm pending/unread/published
type Statuses struct {
	PendingApplication string
	UnreadMessage      string
	PublishedPost      string
}

type ServiceInterface interface {
	Stats(ctx context.Context) (*model.Stats, error)
}

type dashboardService struct {
	counters Counters
	statuses Statuses
}

func NewDashboardService(counters Counters, statuses Statuses) ServiceInterface {
	return &dashboardService{counters: counters, statuses: statuses}
}

func (s *dashboardService) Stats(ctx context.Context) (*model.Stats, error) {
	var (
		st  model.Stats
		err error
	)

	if st.TeamMembers, err = s.counters.TeamMembers(ctx); err != nil {
		return nil, fmt.Errorf("count team members: %w", err)
	}
	if st.Achievements, err = s.counters.Achievements(ctx); err != nil {
		return nil, fmt.Errorf("count achievements: %w", err)
	}

	counts := []struct {
		name   string
		fn     CountFunc
		status string
		dest   *int64
	}{
		{"applications", s.counters.Applications, "", &st.Applications},
		{"pending applications", s.counters.Applications, s.statuses.PendingApplication, &st.PendingApplications},
		{"messages", s.counters.Messages, "", &st.Messages},
		{"unread messages", s.counters.Messages, s.statuses.UnreadMessage, &st.UnreadMessages},
		{"blog posts", s.counters.BlogPosts, "", &st.BlogPosts},
		{"published posts", s.counters.BlogPosts, s.statuses.PublishedPost, &st.PublishedPosts},
	}
	for _, c := range counts {
		n, err := c.fn(ctx, c.status)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dest = n
	}

	return &st, nil
}
