package setup

import (
	"github.com/parley-dev/parley/internal/config"
	"github.com/parley-dev/parley/internal/handler"
	"github.com/parley-dev/parley/internal/middleware"
	"github.com/parley-dev/parley/internal/service"
	"github.com/parley-dev/parley/internal/storage/pg"
	"github.com/parley-dev/parley/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage  *pg.Storage
	Handler  *handler.Handler
	Identity *middleware.Identity
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	topic := service.NewTopic(storage, &utils.TopicNameValidator{}, cfg.Public.FrontPageTopicLimit, cfg.Public.FrontPagePostLimit)
	membership := service.NewMembership(storage)
	post := service.NewPost(storage, &utils.PostValidator{})

	h := handler.New(topic, membership, post)

	return &Dependencies{
		Storage:  storage,
		Handler:  h,
		Identity: middleware.NewIdentity(cfg.Private.JwtKey),
	}, nil
}
