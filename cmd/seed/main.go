package main

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/aijournal/internal/config"
	"github.com/aijournal/internal/db"
	"github.com/aijournal/internal/service"
)

// 初始化演示数据：管理员账号、两篇已发布条目和一篇衍生长文。
func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	username := cfg.AdminUsername
	password := cfg.AdminPassword
	if username == "" {
		username = "admin"
	}
	if password == "" {
		password = "admin"
	}

	if err := db.EnsureAdmin(gdb, username, password); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure admin user")
	}

	var admin db.User
	if err := gdb.Where("username = ?", username).First(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to load admin user")
	}

	var entryCount int64
	if err := gdb.Model(&db.Entry{}).Count(&entryCount).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to count entries")
	}
	if entryCount > 0 {
		log.Info().Int64("entries", entryCount).Msg("entries already present, skipping seed")
		return
	}

	entries := []db.Entry{
		{
			Title:     "Getting Started with AI Journal",
			Slug:      service.Slugify("Getting Started with AI Journal"),
			Content:   "Today marks the beginning of my journey with AI-enhanced content creation. This platform will help transform simple journal entries into comprehensive blog posts with minimal effort.",
			Date:      time.Now(),
			Tags:      datatypes.NewJSONSlice([]string{"ai", "journaling", "getting-started"}),
			Published: true,
			AuthorID:  admin.ID,
		},
		{
			Title:     "The Power of Consistent Writing",
			Slug:      service.Slugify("The Power of Consistent Writing"),
			Content:   "Consistency is key to building a successful blog. Even a short daily entry can provide the foundation for meaningful content when enhanced by AI.",
			Date:      time.Now().Add(-24 * time.Hour),
			Tags:      datatypes.NewJSONSlice([]string{"writing", "consistency", "blogging-tips"}),
			Published: true,
			AuthorID:  admin.ID,
		},
	}

	if err := gdb.Create(&entries).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed entries")
	}

	post := db.BlogPost{
		Title:       "Leveraging AI to Transform Your Writing Process",
		Slug:        "ai-transform-writing-process",
		Summary:     "How AI tools can help turn simple journal entries into comprehensive blog content.",
		Content:     "AI technology is revolutionizing how we approach content creation. What begins as a simple journal entry can quickly evolve into a comprehensive blog post with the right tools.",
		PublishDate: time.Now(),
		Published:   true,
		AuthorID:    admin.ID,
		EntryID:     &entries[0].ID,
	}

	if err := gdb.Create(&post).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed blog post")
	}

	log.Info().
		Str("admin", admin.Username).
		Int("entries", len(entries)).
		Msg("seed data created")
}
