package request

import (
	"strings"

	"leadmarket/internal/domain/entities"
)

type RoomMeasurementRequest struct {
	Length float64 `json:"length" binding:"required"`
	Width  float64 `json:"width" binding:"required"`
}

type ExtrasRequest struct {
	Doors          int `json:"doors"`
	Windows        int `json:"windows"`
	SkirtingBoards int `json:"skirting_boards"`
}

// EstimateRequest is the customer-facing quote payload. Either rooms or a
// package id must be present; the engine validates the combination.
type EstimateRequest struct {
	Rooms        []RoomMeasurementRequest `json:"rooms"`
	PropertyType string                   `json:"property_type"`
	Postcode     string                   `json:"postcode"`
	Extras       ExtrasRequest            `json:"extras"`
	PackageID    string                   `json:"package_id"`
}

func (r EstimateRequest) ToEntity() entities.EstimateRequest {
	rooms := make([]entities.RoomMeasurement, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, entities.RoomMeasurement{Length: room.Length, Width: room.Width})
	}
	return entities.EstimateRequest{
		Rooms:        rooms,
		PropertyType: entities.PropertyType(strings.TrimSpace(r.PropertyType)),
		Postcode:     strings.TrimSpace(r.Postcode),
		Extras: entities.ExtrasSpec{
			Doors:          r.Extras.Doors,
			Windows:        r.Extras.Windows,
			SkirtingBoards: r.Extras.SkirtingBoards,
		},
		PackageID: strings.TrimSpace(r.PackageID),
	}
}
