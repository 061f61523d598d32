package service

import (
	"context"

	"vibecode-be/internal/dto"
	"vibecode-be/internal/pkg/logger"
	"vibecode-be/pkg/visualsearch"
)

type ISearchService interface {
	SearchShots(ctx context.Context, query string) (*dto.VisualSearchResponse, error)
}

type searchService struct {
	client *visualsearch.Client
	logger logger.ILogger
}

func NewSearchService(client *visualsearch.Client, log logger.ILogger) ISearchService {
	return &searchService{
		client: client,
		logger: log,
	}
}

func (s *searchService) SearchShots(ctx context.Context, query string) (*dto.VisualSearchResponse, error) {
	shots, err := s.client.Search(ctx, query)
	if err != nil {
		s.logger.Error("SearchService", "Shot search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		return nil, err
	}

	resp := &dto.VisualSearchResponse{
		Shots: make([]dto.VisualShotResponse, 0, len(shots)),
	}
	for _, shot := range shots {
		resp.Shots = append(resp.Shots, dto.VisualShotResponse{
			Id:        shot.Id,
			Title:     shot.Title,
			ImageURL:  shot.Images.Normal,
			HiDPIURL:  shot.Images.HiDPI,
			SourceURL: shot.HTMLURL,
		})
	}
	return resp, nil
}
