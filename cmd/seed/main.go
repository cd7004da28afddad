// Command seed loads a sample deal catalog into MongoDB. Existing deals
// are matched by title and skipped, so the tool is safe to re-run.
package main

import (
	"context"
	"log"
	"time"

	"github.com/launchperks/deals-service/internal/config"
	"github.com/launchperks/deals-service/internal/domain"
	"github.com/launchperks/deals-service/internal/repository"
	"github.com/launchperks/deals-service/pkg/database"
	"github.com/launchperks/deals-service/pkg/observability"
	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer db.Close(ctx)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("Failed to create indexes", zap.Error(err))
	}

	deals := repository.NewDealRepository(db)

	var created, skipped int
	for _, deal := range sampleDeals() {
		exists, err := deals.ExistsByTitle(ctx, deal.Title)
		if err != nil {
			logger.Fatal("Failed to check existing deal", zap.String("title", deal.Title), zap.Error(err))
		}
		if exists {
			skipped++
			continue
		}

		if err := deals.Create(ctx, deal); err != nil {
			logger.Fatal("Failed to create deal", zap.String("title", deal.Title), zap.Error(err))
		}
		logger.Info("Created deal", zap.String("title", deal.Title), zap.String("category", string(deal.Category)))
		created++
	}

	logger.Info("Seeding complete", zap.Int("created", created), zap.Int("skipped", skipped))
}

func sampleDeals() []*domain.Deal {
	validUntil := time.Now().AddDate(0, 6, 0)
	maxCloudClaims := int64(500)

	return []*domain.Deal{
		{
			Title:       "CloudScale Pro - $5,000 in Credits",
			Description: "Get $5,000 in cloud computing credits to scale your infrastructure. Perfect for startups building their MVP or scaling to their first thousand users.",
			Category:    domain.CategoryCloudServices,
			Partner: domain.Partner{
				Name:        "CloudScale",
				Website:     "https://cloudscale.example.com",
				Description: "Enterprise-grade cloud infrastructure for growing startups",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountCredits,
				Value:         "$5,000 credits",
				OriginalPrice: "$5,000",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"Compute, storage, and networking credits",
				"Valid for 12 months from activation",
				"Access to startup support team",
			},
			Terms:      "Credits expire 12 months after redemption. New customers only.",
			ValidUntil: &validUntil,
			MaxClaims:  &maxCloudClaims,
			IsActive:   true,
			Featured:   true,
		},
		{
			Title:       "GrowthMail - 6 Months Free on Growth Plan",
			Description: "Email marketing built for product-led growth. Automated campaigns, segmentation, and analytics free for six months on the Growth plan.",
			Category:    domain.CategoryMarketing,
			Partner: domain.Partner{
				Name:        "GrowthMail",
				Website:     "https://growthmail.example.com",
				Description: "Email marketing for modern startups",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountFreeTrial,
				Value:         "6 months free",
				OriginalPrice: "$594",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"Up to 50,000 contacts",
				"Unlimited campaigns and automations",
				"Dedicated onboarding session",
			},
			Terms:    "Offer applies to the Growth plan only. Converts to paid after 6 months.",
			IsActive: true,
			Featured: true,
		},
		{
			Title:       "InsightDash - 50% Off Annual Analytics Plan",
			Description: "Product analytics that shows you exactly how users move through your funnel. Half price on any annual plan for your first year.",
			Category:    domain.CategoryAnalytics,
			Partner: domain.Partner{
				Name:        "InsightDash",
				Website:     "https://insightdash.example.com",
				Description: "Product analytics without the complexity",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountPercentage,
				Value:         "50% off",
				OriginalPrice: "$2,388/year",
			},
			IsLocked:                true,
			EligibilityRequirements: "Verified accounts only",
			Features: []string{
				"Unlimited tracked events",
				"Funnel and retention reports",
				"Session replay included",
			},
			Terms:    "Discount applies to the first annual billing cycle.",
			IsActive: true,
			Featured: true,
		},
		{
			Title:       "TaskForge Teams - $400 Off First Year",
			Description: "Project management that keeps small teams shipping. Kanban boards, sprints, roadmaps, and time tracking in one place.",
			Category:    domain.CategoryProductivity,
			Partner: domain.Partner{
				Name:        "TaskForge",
				Website:     "https://taskforge.example.com",
				Description: "Project management for teams that ship",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountFixed,
				Value:         "$400 off",
				OriginalPrice: "$1,200/year",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"Unlimited projects and boards",
				"Native GitHub and Slack integrations",
				"Priority support",
			},
			Terms:    "Valid for new TaskForge Teams subscriptions.",
			IsActive: true,
		},
		{
			Title:       "DeployBot CI - 12 Months of Pro for Free",
			Description: "Continuous integration and deployment pipelines with zero configuration. A full year of the Pro tier free for early-stage startups.",
			Category:    domain.CategoryDevelopment,
			Partner: domain.Partner{
				Name:        "DeployBot",
				Website:     "https://deploybot.example.com",
				Description: "CI/CD pipelines that configure themselves",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountFreeTrial,
				Value:         "12 months free",
				OriginalPrice: "$1,188",
			},
			IsLocked:                true,
			EligibilityRequirements: "Verified accounts only",
			Features: []string{
				"Unlimited build minutes",
				"Parallel test execution",
				"Preview environments per pull request",
			},
			Terms:    "Startups under 3 years old and under $1M ARR.",
			IsActive: true,
		},
		{
			Title:       "PixelKit - 40% Off Design System Library",
			Description: "A complete design system with 5,000+ components for Figma and code. Ship consistent interfaces without building a system from scratch.",
			Category:    domain.CategoryDesign,
			Partner: domain.Partner{
				Name:        "PixelKit",
				Website:     "https://pixelkit.example.com",
				Description: "Design systems for product teams",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountPercentage,
				Value:         "40% off",
				OriginalPrice: "$499",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"5,000+ Figma components",
				"React and Vue component libraries",
				"Lifetime updates",
			},
			Terms:    "One license per company.",
			IsActive: true,
		},
		{
			Title:       "TeamVoice - 3 Months Free Business Plan",
			Description: "Voice, video, and messaging for distributed teams. Three months of the Business plan free, including unlimited meeting recordings.",
			Category:    domain.CategoryCommunication,
			Partner: domain.Partner{
				Name:        "TeamVoice",
				Website:     "https://teamvoice.example.com",
				Description: "Communication tools for remote-first teams",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountFreeTrial,
				Value:         "3 months free",
				OriginalPrice: "$45/user",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"Unlimited meeting length and recordings",
				"Transcription in 20 languages",
				"SSO and admin controls",
			},
			Terms:    "Teams of up to 50 users.",
			IsActive: true,
		},
		{
			Title:       "LedgerLine - Free Bookkeeping for 6 Months",
			Description: "Automated bookkeeping and financial reporting for startups. Connect your bank, and monthly books close themselves.",
			Category:    domain.CategoryFinance,
			Partner: domain.Partner{
				Name:        "LedgerLine",
				Website:     "https://ledgerline.example.com",
				Description: "Bookkeeping on autopilot",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountFreeTrial,
				Value:         "6 months free",
				OriginalPrice: "$1,794",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"Automatic bank reconciliation",
				"Monthly P&L and balance sheet",
				"Tax-season export package",
			},
			Terms:    "US-based entities only.",
			IsActive: true,
		},
		{
			Title:       "ClauseCraft - Startup Legal Pack at 60% Off",
			Description: "Attorney-reviewed legal templates for incorporation, fundraising, and hiring. Everything a founder signs in year one.",
			Category:    domain.CategoryLegal,
			Partner: domain.Partner{
				Name:        "ClauseCraft",
				Website:     "https://clausecraft.example.com",
				Description: "Legal templates founders actually understand",
			},
			Discount: domain.Discount{
				Type:          domain.DiscountPercentage,
				Value:         "60% off",
				OriginalPrice: "$750",
			},
			EligibilityRequirements: "Available to all registered users",
			Features: []string{
				"50+ attorney-reviewed templates",
				"SAFE and convertible note documents",
				"Employment and contractor agreements",
			},
			Terms:    "Templates are not a substitute for legal advice.",
			IsActive: true,
		},
	}
}
