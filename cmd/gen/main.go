package main

import (
	"venmito/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.PersonModel{},
		model.DeviceModel{},
		model.PersonDeviceModel{},
		model.PromotionModel{},
		model.TransferModel{},
		model.ItemModel{},
		model.TransactionModel{},
		model.TransactionItemModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
