package routes

import (
	"reflect"
	"strings"

	"github.com/Govind-619/PaySphere/controllers"
	"github.com/Govind-619/PaySphere/middleware"
	"github.com/Govind-619/PaySphere/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	registerJSONFieldNames()

	router := gin.New()

	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	router.GET("/health", controllers.Health)
	router.GET("/ready", controllers.Ready)

	payments := router.Group("/payments")
	payments.Use(middleware.APIKeyAuth())
	{
		payments.POST("", controllers.CreatePayment)
	}

	return router
}

// registerJSONFieldNames makes validation errors report json tag names
// instead of Go struct field names.
func registerJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
