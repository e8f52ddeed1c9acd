package routes

import (
	"context"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/controllers"
	middlewares "stayhub/middleware"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary, m *melody.Melody) {

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware(), middlewares.ErrorHandler())

	// auth
	v1.POST("/auth/register", controllers.RegisterGuest)
	v1.POST("/auth/login", controllers.Login)
	v1.DELETE("/auth/logout", controllers.Logout)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/verify-email", controllers.VerifyEmail)
	v1.POST("/resendCode", middlewares.AuthMiddleware(), controllers.ResendVerificationCode)
	v1.GET("/profile", middlewares.AuthMiddleware(), controllers.GetProfile)
	v1.PUT("/profile", middlewares.AuthMiddleware(), controllers.UpdateProfile)

	// room catalog and availability search
	v1.GET("/rooms", controllers.SearchRooms)
	v1.GET("/rooms/:id", controllers.GetRoomDetail)
	v1.GET("/roomTypes", controllers.ListRoomTypes)
	v1.POST("/roomTypes", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.CreateRoomType)
	v1.GET("/floors", controllers.ListFloors)
	v1.POST("/floors", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.CreateFloor)
	v1.GET("/roomCalendar", middlewares.AuthMiddleware(), controllers.GetRoomCalendar)
	v1.POST("/rooms", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.CreateRoom)
	v1.PUT("/roomUpdate", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.UpdateRoom)
	v1.PUT("/roomState", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.ChangeRoomState)

	// bookings
	v1.POST("/booking", middlewares.AuthMiddleware(), controllers.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(), controllers.GetBookingDetail)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(), controllers.GetBookingHistory)
	v1.PUT("/bookingConfirm", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.ConfirmBooking)
	v1.PUT("/bookingCancel", middlewares.AuthMiddleware(), controllers.CancelBooking)

	// rentals, check-in and check-out
	v1.POST("/rental", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.CreateRental)
	v1.GET("/rental", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.GetRentals)
	v1.GET("/rental/:id", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.GetRentalDetail)

	// payment
	v1.GET("/paymentQR", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.GetPaymentQR)
	v1.PUT("/paymentStatus", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), controllers.ConfirmPayment)

	// reviews
	v1.POST("/review", middlewares.AuthMiddleware(), controllers.CreateReview)
	v1.GET("/review", controllers.GetRoomReviews)

	// chat over HTTP; live chat runs on /ws
	v1.POST("/chat", controllers.ChatMessage)
	v1.GET("/chatHistory", controllers.GetChatHistory)

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(constants.RoleSuperAdmin, constants.RoleStaff), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files in request"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No files in request"})
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				_ = c.Error(err)
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload complete",
			"urls":    urls,
		})
	})

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file in request"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot open file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload complete",
			"url":     resp.SecureURL,
		})
	})
}
