package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

type topicService struct {
	topics repository.TopicRepository
}

func newTopicService(topics repository.TopicRepository) *topicService {
	return &topicService{topics: topics}
}

func (s *topicService) ListTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.List(ctx)
}
