package recommend

import (
	"context"
	"sportmaps/internal/service/recommend"
)

type Core interface {
	Recommend(ctx context.Context, profile recommend.UserProfile) ([]recommend.Recommendation, error)
}
