package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fitcore/cmd/fx/account_fx"
	"fitcore/cmd/fx/chat_fx"
	"fitcore/cmd/fx/class_fx"
	"fitcore/cmd/fx/content_fx"
	"fitcore/cmd/fx/controllers_fx"
	"fitcore/cmd/fx/dashboard_fx"
	"fitcore/cmd/fx/db_fx"
	"fitcore/cmd/fx/logger_fx"
	"fitcore/cmd/fx/mail_fx"
	"fitcore/cmd/fx/memcache_fx"
	"fitcore/cmd/fx/notification_fx"
	"fitcore/cmd/fx/shop_fx"
	"fitcore/cmd/fx/subscription_fx"
	"fitcore/cmd/fx/video_fx"
	"fitcore/cmd/fx/workout_fx"
	"fitcore/internal/api/controllers"
	"fitcore/internal/infra"
	"fitcore/pkg/authz"
	"fitcore/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	if err := authz.Validate(); err != nil {
		log.Fatalf("permission table invalid: %v", err)
	}

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		notification_fx.Module,
		account_fx.Module,
		subscription_fx.Module,
		video_fx.Module,
		class_fx.Module,
		workout_fx.Module,
		shop_fx.Module,
		content_fx.Module,
		chat_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(Migrate),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func Migrate(db *gorm.DB, logger *zap.Logger) {
	if err := infra.Migrate(db); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

// Controllers collects every HTTP controller for route registration.
type Controllers struct {
	fx.In

	Account      *controllers.AccountController
	Subscription *controllers.SubscriptionController
	Video        *controllers.VideoController
	Class        *controllers.ClassController
	Workout      *controllers.WorkoutController
	Diet         *controllers.DietController
	Shop         *controllers.ShopController
	Article      *controllers.ArticleController
	Ticket       *controllers.TicketController
	Chat         *controllers.ChatController
	Notification *controllers.NotificationController
	Dashboard    *controllers.DashboardController
	Upload       *controllers.UploadController
}

func ProvideRouter(ctrl Controllers, resolver middleware.IdentityResolver) *gin.Engine {
	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	RegisterRoutes(r, ctrl, resolver)
	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers, resolver middleware.IdentityResolver) {
	api := r.Group("/api")

	// Public surface: auth flows plus read-only catalog content.
	auth := api.Group("/auth")
	auth.POST("/register", ctrl.Account.Register)
	auth.POST("/login", ctrl.Account.Login)
	auth.POST("/forgot-password", ctrl.Account.ForgotPassword)
	auth.POST("/verify-otp", ctrl.Account.VerifyOtpToken)
	auth.POST("/reset-password", ctrl.Account.ResetPassword)

	api.GET("/plans", ctrl.Subscription.ListPlans)
	api.GET("/articles", ctrl.Article.List)
	api.GET("/articles/:id", ctrl.Article.Get)
	api.GET("/articles/:id/comments", ctrl.Article.ListComments)
	api.GET("/shop/products", ctrl.Shop.ListProducts)
	api.GET("/shop/products/:id", ctrl.Shop.GetProduct)

	// Everything below requires a verified token and a live account.
	authed := api.Group("")
	authed.Use(middleware.JWTAuthMiddleware(resolver))

	me := authed.Group("/me", middleware.RequireCapability(authz.CapProfileSelf))
	me.GET("", ctrl.Account.Profile)
	me.PUT("", ctrl.Account.UpdateProfile)
	me.POST("/password", ctrl.Account.ChangePassword)

	users := authed.Group("/users", middleware.RequireCapability(authz.CapUsersManage))
	users.GET("", ctrl.Account.ListUsers)
	users.PUT("/:id/role", ctrl.Account.ChangeRole)
	users.PUT("/:id/coach", ctrl.Account.AssignCoach)
	users.DELETE("/:id", ctrl.Account.DeleteUser)

	clients := authed.Group("/clients", middleware.RequireCapability(authz.CapClientsView))
	clients.GET("", ctrl.Account.MyClients)
	clients.GET("/:id/workouts", ctrl.Workout.ClientAssignments)

	authed.POST("/plans", middleware.RequireCapability(authz.CapPlansManage), ctrl.Subscription.UpsertPlan)

	subs := authed.Group("/subscriptions", middleware.RequireCapability(authz.CapSubscriptionSelf))
	subs.POST("", ctrl.Subscription.Subscribe)
	subs.GET("/current", ctrl.Subscription.Current)
	subs.DELETE("/current", ctrl.Subscription.Cancel)
	subs.GET("/history", ctrl.Subscription.History)

	videos := authed.Group("/videos")
	videos.GET("", middleware.RequireCapability(authz.CapVideosView), ctrl.Video.List)
	videos.GET("/:id", middleware.RequireCapability(authz.CapVideosView), ctrl.Video.Get)
	videos.POST("", middleware.RequireCapability(authz.CapVideosManage), ctrl.Video.Create)
	videos.PUT("/:id", middleware.RequireCapability(authz.CapVideosManage), ctrl.Video.Update)
	videos.DELETE("/:id", middleware.RequireCapability(authz.CapVideosManage), ctrl.Video.Delete)

	classes := authed.Group("/classes")
	classes.GET("", middleware.RequireCapability(authz.CapClassesView), ctrl.Class.List)
	classes.GET("/:id", middleware.RequireCapability(authz.CapClassesView), ctrl.Class.Get)
	classes.POST("", middleware.RequireCapability(authz.CapClassesManage), ctrl.Class.Create)
	classes.PUT("/:id", middleware.RequireCapability(authz.CapClassesManage), ctrl.Class.Update)
	classes.DELETE("/:id", middleware.RequireCapability(authz.CapClassesManage), ctrl.Class.Delete)
	classes.POST("/:id/reservations", middleware.RequireCapability(authz.CapClassesReserve), ctrl.Class.Reserve)
	classes.DELETE("/:id/reservations", middleware.RequireCapability(authz.CapClassesReserve), ctrl.Class.CancelReservation)
	authed.GET("/reservations", middleware.RequireCapability(authz.CapClassesReserve), ctrl.Class.MyReservations)

	workouts := authed.Group("/workout-plans", middleware.RequireCapability(authz.CapWorkoutsManage))
	workouts.GET("", ctrl.Workout.ListPlans)
	workouts.POST("", ctrl.Workout.CreatePlan)
	workouts.PUT("/:id", ctrl.Workout.UpdatePlan)
	workouts.DELETE("/:id", ctrl.Workout.DeletePlan)
	workouts.POST("/assign", ctrl.Workout.Assign)

	myWorkouts := authed.Group("/my/workouts", middleware.RequireCapability(authz.CapWorkoutsSelf))
	myWorkouts.GET("", ctrl.Workout.MyAssignments)
	myWorkouts.PUT("/:id", ctrl.Workout.UpdateAssignment)

	diets := authed.Group("/diet-plans", middleware.RequireCapability(authz.CapDietsManage))
	diets.GET("", ctrl.Diet.ListPlans)
	diets.POST("", ctrl.Diet.CreatePlan)
	diets.PUT("/:id", ctrl.Diet.UpdatePlan)
	diets.DELETE("/:id", ctrl.Diet.DeletePlan)
	diets.POST("/assign", ctrl.Diet.Assign)

	myDiets := authed.Group("/my/diets", middleware.RequireCapability(authz.CapDietsSelf))
	myDiets.GET("", ctrl.Diet.MyAssignments)
	myDiets.PUT("/:id", ctrl.Diet.UpdateAssignment)

	products := authed.Group("/shop/admin/products", middleware.RequireCapability(authz.CapProductsManage))
	products.POST("", ctrl.Shop.CreateProduct)
	products.PUT("/:id", ctrl.Shop.UpdateProduct)
	products.DELETE("/:id", ctrl.Shop.DeleteProduct)

	authed.POST("/shop/checkout", middleware.RequireCapability(authz.CapOrdersSelf), ctrl.Shop.Checkout)
	authed.GET("/shop/orders", middleware.RequireCapability(authz.CapOrdersSelf), ctrl.Shop.MyOrders)
	authed.GET("/shop/admin/orders", middleware.RequireCapability(authz.CapOrdersManage), ctrl.Shop.AllOrders)
	authed.PUT("/shop/admin/orders/:id/status", middleware.RequireCapability(authz.CapOrdersManage), ctrl.Shop.UpdateOrderStatus)

	articles := authed.Group("/articles")
	articles.POST("", middleware.RequireCapability(authz.CapArticlesManage), ctrl.Article.Create)
	articles.PUT("/:id", middleware.RequireCapability(authz.CapArticlesManage), ctrl.Article.Update)
	articles.DELETE("/:id", middleware.RequireCapability(authz.CapArticlesManage), ctrl.Article.Delete)
	articles.POST("/:id/comments", middleware.RequireCapability(authz.CapCommentsWrite), ctrl.Article.AddComment)
	authed.DELETE("/comments/:commentId", middleware.RequireCapability(authz.CapCommentsWrite), ctrl.Article.DeleteComment)

	tickets := authed.Group("/tickets")
	tickets.POST("", middleware.RequireCapability(authz.CapTicketsSelf), ctrl.Ticket.Open)
	tickets.GET("", middleware.RequireCapability(authz.CapTicketsSelf), ctrl.Ticket.MyTickets)
	tickets.GET("/:id", middleware.RequireCapability(authz.CapTicketsSelf), ctrl.Ticket.Get)
	tickets.POST("/:id/replies", middleware.RequireCapability(authz.CapTicketsSelf), ctrl.Ticket.Reply)
	tickets.POST("/:id/close", middleware.RequireCapability(authz.CapTicketsManage), ctrl.Ticket.Close)
	authed.GET("/admin/tickets", middleware.RequireCapability(authz.CapTicketsManage), ctrl.Ticket.AllTickets)

	messages := authed.Group("/messages", middleware.RequireCapability(authz.CapChat))
	messages.POST("", ctrl.Chat.SendMessage)
	messages.GET("/:id", ctrl.Chat.Conversation)
	authed.GET("/ws", middleware.RequireCapability(authz.CapChat), ctrl.Chat.Socket)

	notifications := authed.Group("/notifications", middleware.RequireCapability(authz.CapNotificationsSelf))
	notifications.GET("", ctrl.Notification.List)
	notifications.PUT("/:id/read", ctrl.Notification.MarkRead)
	notifications.PUT("/read-all", ctrl.Notification.MarkAllRead)

	authed.GET("/admin/dashboard", middleware.RequireCapability(authz.CapDashboardView), ctrl.Dashboard.Report)
	authed.GET("/admin/activity", middleware.RequireCapability(authz.CapActivityView), ctrl.Dashboard.ActivityLog)

	authed.POST("/uploads", middleware.RequireCapability(authz.CapUploadsWrite), ctrl.Upload.Upload)
}
