package Models

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DBEnabled reports whether the plan history archive is configured. The core
// generation flow works without a database; history endpoints require one.
func DBEnabled() bool {
	return DB != nil
}

func ConnectDataBase() {
	if !strings.EqualFold(os.Getenv("ENABLE_DB"), "true") {
		log.Println("Database disabled, plan history will not be archived")
		return
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("connection error:", err)
	}
	fmt.Println("We are connected to the database ")

	DB.AutoMigrate(&PlanRecord{})
}
