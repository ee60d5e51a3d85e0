// Command seed bulk-imports demo users and posts from an .xlsx workbook.
// The workbook needs a "users" sheet (username, email, password) and an
// optional "posts" sheet (author username, content).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chirp-social/chirp/internal/models"
	"github.com/chirp-social/chirp/internal/repositories"
	"github.com/chirp-social/chirp/internal/security"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if len(os.Args) < 2 {
		log.Fatal("usage: seed <workbook.xlsx>")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	users := repositories.NewUserRepository(db)
	posts := repositories.NewPostRepository(db)

	imported := importUsers(f, users)
	fmt.Printf("imported %d users\n", imported)

	imported = importPosts(f, users, posts)
	fmt.Printf("imported %d posts\n", imported)
}

func importUsers(f *excelize.File, users *repositories.UserRepository) int {
	rows, err := f.GetRows("users")
	if err != nil {
		log.Fatal("missing 'users' sheet:", err)
	}

	imported := 0
	for i, row := range rows {
		if i == 0 || len(row) < 3 { // header or incomplete row
			continue
		}

		username, email, password := row[0], row[1], row[2]

		taken, err := users.UsernameOrEmailTaken(username, email)
		if err != nil {
			log.Fatal(err)
		}
		if taken {
			fmt.Printf("skipping existing user %q (row %d)\n", username, i+1)
			continue
		}

		hash, err := security.HashPassword(password)
		if err != nil {
			log.Fatal(err)
		}

		if err := users.CreateUser(&models.User{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
		}); err != nil {
			log.Fatal(err)
		}
		imported++
	}

	return imported
}

func importPosts(f *excelize.File, users *repositories.UserRepository, posts *repositories.PostRepository) int {
	rows, err := f.GetRows("posts")
	if err != nil {
		// The posts sheet is optional.
		return 0
	}

	imported := 0
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		username, content := row[0], row[1]

		author, err := users.GetUserByUsername(username)
		if err != nil {
			fmt.Printf("skipping post for unknown user %q (row %d)\n", username, i+1)
			continue
		}

		if err := posts.CreatePost(&models.Post{
			AuthorID: author.ID,
			Content:  content,
		}); err != nil {
			fmt.Printf("skipping invalid post (row %d): %v\n", i+1, err)
			continue
		}
		imported++
	}

	return imported
}
