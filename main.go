package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang-exercisetracker/database"
	middleware "golang-exercisetracker/middleware"
	routes "golang-exercisetracker/routes"
	"golang-exercisetracker/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, using process environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	client := database.Connect(uri)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := store.NewMongoUserStore(ctx, database.OpenCollection(client, "user"))
	if err != nil {
		log.Fatalf("Failed to prepare user collection: %v", err)
	}
	exercises := store.NewMongoExerciseStore(database.OpenCollection(client, "exercise"))

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.ErrorHandler())

	router.StaticFile("/", "./public/index.html")
	router.Static("/public", "./public")

	apiRoutes := router.Group("/")
	{
		routes.ExerciseRoutes(apiRoutes, users, exercises)
	}

	router.NoRoute(middleware.NotFound())

	log.Printf("Server is running on port: %s", port)
	router.Run(":" + port)
}
