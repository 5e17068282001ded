package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fitcore/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return db
}

// Migrate keeps the schema in sync with the model definitions.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.TrainingVideo{},
		&db_models.Class{},
		&db_models.ClassReservation{},
		&db_models.WorkoutPlan{},
		&db_models.UserWorkout{},
		&db_models.DietPlan{},
		&db_models.UserDietPlan{},
		&db_models.Product{},
		&db_models.Order{},
		&db_models.OrderItem{},
		&db_models.Payment{},
		&db_models.Article{},
		&db_models.Comment{},
		&db_models.Ticket{},
		&db_models.TicketReply{},
		&db_models.Message{},
		&db_models.Notification{},
		&db_models.ActivityLog{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	}
}
