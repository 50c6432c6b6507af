package main

import (
	"fmt"
	"log"
	"os"

	"convo-backend/config"
	"convo-backend/controller"
	"convo-backend/dao"
	"convo-backend/database"
	"convo-backend/logic"
	"convo-backend/server"
)

func main() {
	// Initialize config
	if len(os.Args) < 2 {
		log.Fatal("Usage: convo-backend <config.yaml>")
	}
	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config from %s: %v", os.Args[1], err)
	}

	// Initialize database
	db, err := database.Open(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if cfg.Seed.Dir != "" {
		if err := database.Seed(db, cfg.Seed.Dir); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Role-capability map, built once and injected
	roles := config.DefaultRoleCapabilities()

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	convoDAO := dao.NewConversationDAO(db)
	messageDAO := dao.NewMessageDAO(db)

	// Initialize Logics
	userLogic := logic.NewUserLogic(userDAO)
	convoLogic := logic.NewConversationLogic(userDAO, convoDAO)
	messageLogic := logic.NewMessageLogic(userDAO, convoDAO, messageDAO)

	// Initialize Controllers
	ctrl := server.Controllers{
		Auth:         controller.NewAuthController(userLogic, cfg),
		User:         controller.NewUserController(userLogic),
		Conversation: controller.NewConversationController(convoLogic, messageLogic),
		Message:      controller.NewMessageController(messageLogic),
	}

	// Setup router and run server
	r := server.NewRouter(cfg, roles, ctrl)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
