package controllers_fx

import (
	"go.uber.org/fx"

	"fitcore/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewAccountController,
	controllers.NewSubscriptionController,
	controllers.NewVideoController,
	controllers.NewClassController,
	controllers.NewWorkoutController,
	controllers.NewDietController,
	controllers.NewShopController,
	controllers.NewArticleController,
	controllers.NewTicketController,
	controllers.NewChatController,
	controllers.NewNotificationController,
	controllers.NewDashboardController,
	controllers.NewUploadController,
)
