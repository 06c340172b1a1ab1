package main

import (
	"crosspath/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserLocationModel{},
		model.ProximityEventModel{},
		model.MatchModel{},
		model.FriendRequestModel{},
		model.FriendModel{},
		model.UserDeviceModel{},
		model.UserProfileModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
