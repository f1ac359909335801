package internal

import (
	"ripplenet-backend/internal/service"
)

func Initialize() {
	// initialize service
	service.Initialize()
}
