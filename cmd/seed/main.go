package main

import (
	"fmt"
	"strings"

	"talenthub/internal/model"
	"talenthub/pkg/config"
	"talenthub/pkg/database"
	"talenthub/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email    string
		name     string
		password string
		role     string
	}{
		{"admin@campus.edu", "Platform Admin", "admin123", "admin"},
		{"alice@campus.edu", "Alice Rivera", "password123", "creator"},
		{"bob@campus.edu", "Bob Tanaka", "password123", "creator"},
		{"carol@campus.edu", "Carol Okafor", "password123", "creator"},
		{"dave@campus.edu", "Dave Lindqvist", "password123", "viewer"},
		{"erin@campus.edu", "Erin Walsh", "password123", "viewer"},
	}

	userIDs := make(map[string]string, len(testUsers))

	for _, userData := range testUsers {
		email := strings.ToLower(userData.email)

		var existing model.UserModel
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", email)
			userIDs[userData.name] = existing.ID
			continue
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := &model.UserModel{
			Email:    email,
			Name:     userData.name,
			Password: string(hashedPassword),
			Role:     userData.role,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", email, err)
		}

		log.Info("Created user: %s (%s)", user.Name, user.Email)
		userIDs[userData.name] = user.ID
	}

	demoPosts := []struct {
		author      string
		title       string
		description string
		postType    string
		status      string
		views       int64
	}{
		{"Alice Rivera", "Open Mic Night Highlights", "Best moments from the spring open mic.", "video", "approved", 120},
		{"Alice Rivera", "Acoustic Cover Session", "Live from the dorm common room.", "audio", "approved", 85},
		{"Bob Tanaka", "Campus Photography Walkthrough", "How I shot the library at golden hour.", "blog", "approved", 64},
		{"Bob Tanaka", "Beatbox Practice Tape", "Work in progress, feedback welcome.", "audio", "pending", 0},
		{"Carol Okafor", "Intro to Stage Lighting", "A short explainer for theater newcomers.", "video", "approved", 42},
	}

	for _, postData := range demoPosts {
		authorID, ok := userIDs[postData.author]
		if !ok {
			continue
		}

		var existing model.PostModel
		if err := db.Where("author_id = ? AND title = ?", authorID, postData.title).First(&existing).Error; err == nil {
			continue
		}

		post := &model.PostModel{
			AuthorID:    authorID,
			Title:       postData.title,
			Description: postData.description,
			Type:        postData.postType,
			Status:      postData.status,
			Views:       postData.views,
		}
		if err := db.Create(post).Error; err != nil {
			log.Error("Failed to create post %q: %v", postData.title, err)
			continue
		}

		log.Info("Created post: %s by %s", post.Title, postData.author)
	}

	log.Info("Created demo posts")
	return nil
}
