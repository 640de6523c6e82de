package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "Backend-SchoolAdmin/docs"
	"Backend-SchoolAdmin/src/controllers"
	"Backend-SchoolAdmin/src/database"
	"Backend-SchoolAdmin/src/jobs"
	"Backend-SchoolAdmin/src/middleware"
	"Backend-SchoolAdmin/src/routes"
	"Backend-SchoolAdmin/src/services/applications"
	"Backend-SchoolAdmin/src/services/students"
	"Backend-SchoolAdmin/src/services/uploads"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

func main() {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	// เชื่อมต่อ MongoDB — main ถือ client เองและปิดตอน shutdown
	client, err := database.Connect(mongoURI)
	if err != nil {
		log.Fatalf("❌ Error connecting to the database: %v", err)
	}
	defer database.Disconnect(client)

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "ecole"
	}
	db := client.Database(dbName)

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatalf("❌ Error creating indexes: %v", err)
	}

	// Upload Collaborator + งานเบื้องหลังลบไฟล์ CV
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads/cv"
	}
	uploadsSvc := uploads.NewService(uploadDir)

	redisURI := os.Getenv("REDIS_URI")
	redisClient := database.InitRedis(redisURI)
	asynqClient := database.InitAsynq(redisClient, redisURI)
	dispatcher := jobs.NewDispatcher(asynqClient)

	if asynqClient != nil {
		go func() {
			if err := jobs.RunWorker(redisURI, uploadsSvc); err != nil {
				log.Println("⚠️ Asynq worker stopped:", err)
			}
		}()
	}

	studentSvc := students.NewService(db)
	applicationSvc := applications.NewService(db, uploadsSvc, dispatcher)

	// สร้าง app instance — body ไม่เกิน 10MB ตาม limit เดิม
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(middleware.RequestLogger)

	// CORS: origin dev + FRONTEND_URL ของ production
	origins := "http://localhost:3000,http://localhost:3001"
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		origins += "," + frontend
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.SanitizeBody)

	// ไฟล์ CV ที่อัปโหลดเปิดดูได้ใต้ /uploads
	app.Static("/uploads", "./uploads")

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app,
		controllers.NewStudentController(studentSvc),
		controllers.NewJobController(applicationSvc, uploadsSvc),
		controllers.NewAuthController(),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	// ปิดแบบนุ่มนวลเมื่อโดน SIGINT/SIGTERM
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("📡 Arrêt du serveur...")
		if err := app.Shutdown(); err != nil {
			log.Println("⚠️ Erreur lors de l'arrêt:", err)
		}
	}()

	log.Println("🚀 Serveur démarré sur le port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
