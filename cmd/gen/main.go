package main

import (
	"expitrack/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SubscriptionModel{},
		model.ItemModel{},
		model.UserDeviceModel{},
		model.NotificationModel{},
		model.NotificationPreferenceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
