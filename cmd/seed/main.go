// Command seed runs the database seeder for Flatterer.
package main

import (
	"flag"
	"log"

	"flatterer/internal/config"
	"flatterer/internal/database"
	"flatterer/internal/seed"
)

func main() {
	opts := seed.DefaultOptions()
	flag.IntVar(&opts.Users, "users", opts.Users, "Number of users to create")
	flag.IntVar(&opts.Compliments, "compliments", opts.Compliments, "Number of gender compliments to create")
	flag.BoolVar(&opts.Clean, "clean", opts.Clean, "Clean database before seeding")
	flag.StringVar(&opts.AdminUser, "admin-user", opts.AdminUser, "Username for the dev admin account")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d compliments, clean=%v\n", opts.Users, opts.Compliments, opts.Clean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
