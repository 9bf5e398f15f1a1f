// Package seed populates the database with development fixtures.
package seed

import (
	"fmt"
	"log"

	"flatterer/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var genderedCompliments = map[string][]string{
	"Male": {
		"You have a great sense of style!",
		"Your confidence is contagious.",
		"You always know how to make people laugh.",
	},
	"Female": {
		"Your smile lights up the room!",
		"You handle everything with such grace.",
		"Your kindness never goes unnoticed.",
	},
	models.GenderAny: {
		"You make the world a better place just by being in it.",
		"Talking to you always brightens the day.",
		"You are a genuinely wonderful person.",
	},
}

// Options controls how much data Run generates.
type Options struct {
	Users       int
	Compliments int
	Clean       bool
	AdminName   string
	AdminUser   string
	AdminPass   string
}

// DefaultOptions gives the dev bootstrap: one admin, the two base genders,
// and a handful of compliments awaiting moderation.
func DefaultOptions() Options {
	return Options{
		Users:       10,
		Compliments: 30,
		Clean:       false,
		AdminName:   "Dean",
		AdminUser:   "johnsdea",
		AdminPass:   "password",
	}
}

// Run seeds the database.
func Run(db *gorm.DB, opts Options) error {
	if opts.Clean {
		for _, model := range []interface{}{
			&models.Compliment{}, &models.Theme{}, &models.Complimentee{},
			&models.Gender{}, &models.User{},
		} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return fmt.Errorf("clean: %w", err)
			}
		}
	}

	if err := seedGenders(db); err != nil {
		return err
	}
	admin, err := seedAdmin(db, opts)
	if err != nil {
		return err
	}
	users, err := seedUsers(db, opts.Users)
	if err != nil {
		return err
	}
	if err := seedCompliments(db, opts.Compliments); err != nil {
		return err
	}
	if err := seedComplimentees(db, append(users, admin)); err != nil {
		return err
	}

	log.Printf("Seeded %d users, %d genders, sample complimentees and compliments", opts.Users+1, 2)
	return nil
}

func seedGenders(db *gorm.DB) error {
	for _, label := range []string{"Male", "Female"} {
		var count int64
		db.Model(&models.Gender{}).Where("label = ?", label).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Gender{Label: label}).Error; err != nil {
			return fmt.Errorf("seed gender %s: %w", label, err)
		}
	}
	return nil
}

func seedAdmin(db *gorm.DB, opts Options) (*models.User, error) {
	var existing models.User
	if err := db.Where("username = ?", opts.AdminUser).First(&existing).Error; err == nil {
		return &existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &models.User{
		Name:     opts.AdminName,
		Username: opts.AdminUser,
		Password: string(hash),
		Admin:    true,
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	return admin, nil
}

func seedUsers(db *gorm.DB, n int) ([]*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Name:     gofakeit.FirstName(),
			Username: gofakeit.Username(),
			Password: string(hash),
		}
		if err := db.Create(user).Error; err != nil {
			// Random usernames can collide; skip and continue.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func seedCompliments(db *gorm.DB, n int) error {
	genders := []string{"Male", "Female", models.GenderAny}
	for i := 0; i < n; i++ {
		gender := genders[i%len(genders)]
		var text string
		pool := genderedCompliments[gender]
		if i < len(pool)*len(genders) {
			text = pool[(i/len(genders))%len(pool)]
		} else {
			text = gofakeit.HipsterSentence(6)
		}
		compliment := &models.Compliment{
			Text:     text,
			Gender:   &gender,
			Approved: i%2 == 0, // leave half in the moderation queue
		}
		if err := db.Create(compliment).Error; err != nil {
			return fmt.Errorf("seed compliment: %w", err)
		}
	}
	return nil
}

func seedComplimentees(db *gorm.DB, owners []*models.User) error {
	for i, owner := range owners {
		if owner == nil || i >= 3 {
			break
		}
		name := gofakeit.Name()
		complimentee := &models.Complimentee{
			Name:     name,
			Slug:     gofakeit.Username(),
			Greeting: "Welcome, " + name + "!",
			OwnerID:  owner.ID,
		}
		if err := db.Create(complimentee).Error; err != nil {
			continue
		}
		personal := &models.Compliment{
			Text:           gofakeit.HipsterSentence(5),
			ComplimenteeID: &complimentee.ID,
			Approved:       true,
		}
		if err := db.Create(personal).Error; err != nil {
			return fmt.Errorf("seed personal compliment: %w", err)
		}
	}
	return nil
}
