package main

import (
	"foodaid/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	// Food banks, inventory and requests carry associations and grouped scans
	// and are queried through *gorm.DB directly.
	models := []any{
		model.ActorModel{},
		model.FoodItemModel{},
		model.DistrictModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
