package dto

import (
	"hotelboard/internal/domains/room/model"
	"hotelboard/shared"
)

type RoomResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Floor    string `json:"floor"`
	Capacity int    `json:"capacity"`
	Active   bool   `json:"active"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Floor = model.Floor
	r.Capacity = model.Capacity
	r.Active = model.Active
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
