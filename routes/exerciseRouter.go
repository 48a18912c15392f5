package routes

import (
	controller "golang-exercisetracker/controllers"
	"golang-exercisetracker/store"

	"github.com/gin-gonic/gin"
)

func ExerciseRoutes(incomingRoutes *gin.RouterGroup, users store.UserStore, exercises store.ExerciseStore) {
	incomingRoutes.POST("/api/exercise/new-user", controller.CreateUser(users))
	incomingRoutes.POST("/api/exercise/add", controller.AddExercise(users, exercises))
	incomingRoutes.GET("/api/exercise/log", controller.GetLog(users, exercises))
}
