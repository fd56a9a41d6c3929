package seed

import (
	"context"
	"fmt"

	"github.com/news-cms-api/internal/config"
	"github.com/news-cms-api/internal/models"
	"github.com/news-cms-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

// Run populates an empty database with the initial categories, an admin
// user and a few published sample articles. Existing data is left alone.
func Run(ctx context.Context, repos *repository.Repositories, cfg *config.SeedConfig, log zerolog.Logger) error {
	log = log.With().Str("component", "seed").Logger()

	categoryCount, err := repos.Category.Count(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}

	slugToID := make(map[string]int64)
	if categoryCount == 0 {
		log.Info().Msg("Seeding categories")
		categories := []models.Category{
			{Name: "أخبار", Slug: "news"},
			{Name: "رياضة", Slug: "sports"},
			{Name: "فن", Slug: "arts"},
			{Name: "اقتصاد", Slug: "economy"},
			{Name: "تكنولوجيا", Slug: "tech"},
		}
		for i := range categories {
			if err := repos.Category.Create(ctx, &categories[i]); err != nil {
				return fmt.Errorf("seed category %q: %w", categories[i].Slug, err)
			}
			slugToID[categories[i].Slug] = categories[i].ID
		}
	} else {
		existing, err := repos.Category.List(ctx)
		if err != nil {
			return err
		}
		for _, c := range existing {
			slugToID[c.Slug] = c.ID
		}
	}

	articleCount, err := repos.Article.Count(ctx)
	if err != nil {
		return fmt.Errorf("count articles: %w", err)
	}
	if articleCount > 0 {
		return nil
	}

	log.Info().Msg("Seeding admin user and articles")

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		ID:              "system_admin",
		Email:           cfg.AdminEmail,
		FirstName:       strPtr("System"),
		LastName:        strPtr("Admin"),
		ProfileImageURL: strPtr("https://placehold.co/100x100"),
		PasswordHash:    string(hash),
	}
	if err := repos.User.Upsert(ctx, admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	samples := []models.Article{
		{
			Title:         "افتتاح مشروع جديد للطاقة المتجددة في الصحراء الغربية",
			Subtitle:      strPtr("خطوة كبيرة نحو مستقبل أخضر"),
			Content:       "تم اليوم افتتاح أكبر محطة للطاقة الشمسية...",
			Summary:       "افتتاح محطة طاقة شمسية جديدة بقدرة 500 ميجا وات.",
			CoverImageURL: "https://images.unsplash.com/photo-1509391366360-2e959784a276",
			CategoryID:    slugToID["news"],
			AuthorID:      admin.ID,
			IsPublished:   true,
			IsFeatured:    true,
		},
		{
			Title:         "فوز المنتخب الوطني في المباراة الودية",
			Subtitle:      strPtr("أداء رائع من اللاعبين"),
			Content:       "حقق المنتخب الوطني فوزاً مستحقاً...",
			Summary:       "المنتخب يفوز 2-0 في مباراة قوية.",
			CoverImageURL: "https://images.unsplash.com/photo-1579952363873-27f3bde9be2b",
			CategoryID:    slugToID["sports"],
			AuthorID:      admin.ID,
			IsPublished:   true,
		},
		{
			Title:         "إطلاق هاتف ذكي جديد بمواصفات ثورية",
			Subtitle:      strPtr("كاميرا بدقة 200 ميجابكسل"),
			Content:       "أعلنت الشركة العالمية عن هاتفها الجديد...",
			Summary:       "مواصفات الهاتف الجديد وسعره في الأسواق.",
			CoverImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9",
			CategoryID:    slugToID["tech"],
			AuthorID:      admin.ID,
			IsPublished:   true,
		},
	}

	for i := range samples {
		if samples[i].CategoryID == 0 {
			continue
		}
		if err := repos.Article.Create(ctx, &samples[i]); err != nil {
			return fmt.Errorf("seed article %q: %w", samples[i].Title, err)
		}
	}

	log.Info().Int("articles", len(samples)).Msg("Seed data inserted")
	return nil
}
