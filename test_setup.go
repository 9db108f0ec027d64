package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	// Test data directory
	fmt.Println("Testing data directory...")
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal("Data directory creation failed:", err)
	}
	probe := filepath.Join(dataDir, ".write-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		log.Fatal("Data directory is not writable:", err)
	}
	os.Remove(probe)
	fmt.Println("✅ Data directory writable!")

	// Test Firebase (Auth only)
	fmt.Println("\nTesting Firebase Auth connection...")
	firebasePath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
	opt := option.WithCredentialsFile(firebasePath)

	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Fatal("Firebase initialization failed:", err)
	}

	_, err = app.Auth(context.Background())
	if err != nil {
		log.Fatal("Firebase Auth client failed:", err)
	}
	fmt.Println("✅ Firebase Auth connected successfully!")

	// Test Cloudinary
	fmt.Println("\nTesting Cloudinary connection...")
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Fatal("Cloudinary credentials missing in .env")
	}

	cldURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		log.Fatal("Cloudinary initialization failed:", err)
	}

	if cld.Config.Cloud.CloudName != cloudName {
		log.Fatal("Cloudinary config mismatch")
	}
	fmt.Println("✅ Cloudinary connected successfully!")

	fmt.Println("\n🎉 All systems ready! You can start the API.")
	fmt.Printf("  Data Dir: %s\n", dataDir)
	fmt.Printf("  Cloud Name: %s\n", cloudName)
}
