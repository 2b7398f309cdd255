// Command populate-db seeds a development database with demo users, topics
// and posts so the API has something to serve out of the box.
package main

import (
	"flag"
	"log"

	"github.com/parley-dev/parley/internal/config"
	"github.com/parley-dev/parley/internal/domain"
	"github.com/parley-dev/parley/internal/storage/pg"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	storage, err := pg.New(cfg)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	defer storage.Cleanup()

	users := []domain.Username{"alice", "bob", "carol"}
	ids := make([]domain.UserId, 0, len(users))
	for _, username := range users {
		id, err := storage.SaveUser(username)
		if err != nil {
			log.Fatalf("failed to create user %s: %v", username, err)
		}
		ids = append(ids, id)
	}

	topics := []domain.TopicCreationData{
		{Name: "general", Visibility: domain.Public, FounderId: ids[0]},
		{Name: "gophers", Visibility: domain.Public, FounderId: ids[1]},
		{Name: "inner circle", Visibility: domain.Private, FounderId: ids[0]},
	}
	for _, data := range topics {
		topicId, err := storage.CreateTopic(data)
		if err != nil {
			log.Fatalf("failed to create topic %s: %v", data.Name, err)
		}
		for _, userId := range ids {
			if userId == data.FounderId || data.Visibility == domain.Private {
				continue
			}
			if _, err := storage.AddMember(topicId, userId, domain.StatusMember); err != nil {
				log.Fatalf("failed to add member: %v", err)
			}
		}
		if _, err := storage.CreatePost(domain.PostCreationData{
			TopicId:  topicId,
			AuthorId: data.FounderId,
			Title:    "Welcome",
			Content:  "First post in " + data.Name,
		}); err != nil {
			log.Fatalf("failed to create post: %v", err)
		}
	}

	log.Print("database populated")
}
